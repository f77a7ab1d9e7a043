// Package testutil provides golden-file helpers for the package tests.
package testutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const separator = "\n---\n"

// Case is one golden test case.
//
// File format:
//
//	description: free text
//	---
//	1 + 2
//	---
//	expected output
type Case struct {
	Name        string            // file name without directory
	Description string            // value of the description key
	Meta        map[string]string // all header keys
	Input       string            // the source line under test
	Expected    string            // expected output, trailing newlines trimmed
}

// ParseCaseFile reads and parses a golden case file.
func ParseCaseFile(path string) (*Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseCase(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Name = filepath.Base(path)
	return c, nil
}

// ParseCase parses golden case content.
func ParseCase(content string) (*Case, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	parts := strings.SplitN(content, separator, 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected header, input and output separated by ---, got %d sections", len(parts))
	}

	c := &Case{Meta: parseMeta(parts[0])}
	c.Description = c.Meta["description"]
	c.Input = parts[1]
	c.Expected = strings.TrimRight(parts[2], "\n")
	return c, nil
}

// parseMeta reads simple "key: value" lines. Lines starting with # are
// comments.
func parseMeta(header string) map[string]string {
	meta := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(header))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "\"") {
			value = parseQuotedString(value)
		}
		meta[strings.TrimSpace(key)] = value
	}
	return meta
}

// GlobCases loads every *.txt case in dir, sorted by name.
func GlobCases(dir string) ([]*Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	cases := make([]*Case, 0, len(paths))
	for _, path := range paths {
		c, err := ParseCaseFile(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// parseQuotedString handles escaped characters in quoted strings.
func parseQuotedString(s string) string {
	if len(s) < 2 {
		return s
	}
	if strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "\\n", "\n")
	s = strings.ReplaceAll(s, "\\t", "\t")
	s = strings.ReplaceAll(s, "\\\"", "\"")
	s = strings.ReplaceAll(s, "\\\\", "\\")
	return s
}
