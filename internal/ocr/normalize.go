package ocr

import (
	"regexp"
	"strings"
)

// DefaultMaxTextLength caps OCR text persisted alongside a document.
const DefaultMaxTextLength = 3500

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	// C0/C1 controls minus common whitespace. Includes the \x7f-\x9f stretch
	// some OCR engines leak through.
	reControl    = regexp.MustCompile(`[\x{00}-\x{08}\x{0b}\x{0c}\x{0e}-\x{1f}\x{7f}-\x{84}\x{86}-\x{9f}]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize collapses noisy whitespace while keeping line breaks, so the field
// extractor still sees the receipt's line structure. Conservative: collapses
// >2 newlines into a single blank line and trims trailing spaces per line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reControl.ReplaceAllString(s, "")
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CleanForStorage flattens text for the database: control characters stripped,
// every whitespace run collapsed to a single space, trimmed, truncated to
// maxLength characters (DefaultMaxTextLength when maxLength <= 0). Total
// function; empty input yields "".
func CleanForStorage(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxTextLength
	}
	if s == "" {
		return ""
	}
	s = reControl.ReplaceAllString(s, "")
	s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
	if r := []rune(s); len(r) > maxLength {
		s = strings.TrimSpace(string(r[:maxLength]))
	}
	return s
}
