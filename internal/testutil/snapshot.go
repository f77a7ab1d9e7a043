package testutil

import (
	"fmt"
	"strings"
)

// Normalize trims trailing newlines so golden output and rendered output
// compare equal regardless of the final line ending.
func Normalize(s string) string {
	return strings.TrimRight(s, "\n")
}

// Diff returns a readable diff between expected and actual output, or the
// empty string when they match after normalization.
func Diff(expected, actual string) string {
	expected = Normalize(expected)
	actual = Normalize(actual)
	if expected == actual {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== EXPECTED ===\n")
	sb.WriteString(expected)
	sb.WriteString("\n=== ACTUAL ===\n")
	sb.WriteString(actual)
	sb.WriteString("\n=== END ===\n")

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	for i := 0; i < len(expectedLines) || i < len(actualLines); i++ {
		var expLine, actLine string
		if i < len(expectedLines) {
			expLine = expectedLines[i]
		}
		if i < len(actualLines) {
			actLine = actualLines[i]
		}
		if expLine != actLine {
			fmt.Fprintf(&sb, "\nFirst diff at line %d:\n", i+1)
			fmt.Fprintf(&sb, "  expected: %q\n", expLine)
			fmt.Fprintf(&sb, "  actual:   %q\n", actLine)
			break
		}
	}
	return sb.String()
}
