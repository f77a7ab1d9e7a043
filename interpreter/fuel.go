package interpreter

import "math"

// fuelTracker limits the number of nodes a single evaluation may visit.
type fuelTracker struct {
	initial   uint64
	remaining int64
}

func newFuelTracker(fuel uint64) *fuelTracker {
	if fuel > math.MaxInt64 {
		fuel = math.MaxInt64
	}
	return &fuelTracker{initial: fuel, remaining: int64(fuel)}
}

func (f *fuelTracker) consume(amount int64, span Span) *Error {
	if amount == 0 {
		return nil
	}
	f.remaining -= amount
	if f.remaining < 0 {
		return &Error{Kind: ErrOutOfFuel, Span: span}
	}
	return nil
}

func (f *fuelTracker) remainingFuel() uint64 {
	if f.remaining <= 0 {
		return 0
	}
	return uint64(f.remaining)
}

func (f *fuelTracker) consumedFuel() uint64 {
	remaining := f.remainingFuel()
	if remaining >= f.initial {
		return 0
	}
	return f.initial - remaining
}
