// Package extractor locates the stream/setAlert call-site idiom in source
// text and pulls out the translation key, alert container, and alert type.
//
// The scanner is pure and total: malformed or partially matched idioms yield
// no record, never an error, and identical input always produces identical
// output.
package extractor

import (
	"sort"
	"strings"

	"localecheck/internal/models"
)

const (
	streamMarker = ".stream("
	alertMarker  = ".setAlert("

	// DefaultWindowLines bounds how far past the stream call the paired
	// setAlert call may start, measured in lines of the stripped text.
	DefaultWindowLines = 20

	// setAlert(summary, detail, container, duration, type)
	minAlertArgs = 5
)

type Extractor struct {
	windowLines int
}

func New() *Extractor {
	return &Extractor{windowLines: DefaultWindowLines}
}

// NewWithWindow overrides the lookahead window. Values below 1 fall back to
// the default.
func NewWithWindow(lines int) *Extractor {
	if lines < 1 {
		lines = DefaultWindowLines
	}
	return &Extractor{windowLines: lines}
}

type dedupeKey struct {
	line int
	key  string
}

// Extract scans source text for the two-call idiom and returns all matches
// sorted by line number. Line numbers are counted against the
// comment-stripped text: stripping a multi-line block comment shifts every
// following line up, and no offset correction is applied.
func (e *Extractor) Extract(text string) []models.CallSitePattern {
	stripped := StripComments(text)
	offsets := buildLineOffsets(stripped)

	patterns := make([]models.CallSitePattern, 0)
	seen := make(map[dedupeKey]bool)

	pos := 0
	for {
		i := strings.Index(stripped[pos:], streamMarker)
		if i < 0 {
			break
		}
		start := pos + i
		pos = start + len(streamMarker)

		key, _, ok := parseStringLiteral(stripped, start+len(streamMarker))
		if !ok {
			continue
		}

		line := lineAt(offsets, start)
		windowEnd := windowLimit(offsets, line, e.windowLines, len(stripped))

		j := strings.Index(stripped[start:windowEnd], alertMarker)
		if j < 0 {
			continue
		}
		argStart := start + j + len(alertMarker)

		args, callEnd, ok := splitArgs(stripped, argStart)
		if !ok || len(args) < minAlertArgs {
			continue
		}

		container, ok := unquote(strings.TrimSpace(args[2]))
		if !ok {
			continue
		}
		alertType := trimArgNoise(args[4])
		if alertType == "" {
			continue
		}

		dk := dedupeKey{line: line, key: key}
		if seen[dk] {
			continue
		}
		seen[dk] = true

		patterns = append(patterns, models.CallSitePattern{
			TranslationKey: key,
			AlertContainer: container,
			AlertType:      alertType,
			Line:           line,
			RawSnippet:     collapseWhitespace(stripped[start:callEnd]),
		})
	}

	sort.SliceStable(patterns, func(a, b int) bool {
		return patterns[a].Line < patterns[b].Line
	})
	return patterns
}

// StripComments removes block comments (non-greedy, multi-line) and line
// comments from source text. Comment markers inside string literals are left
// alone. Block comment bodies are dropped entirely, newlines included.
func StripComments(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]

		if c == '\'' || c == '"' || c == '`' {
			end := findStringEnd(src, i)
			out.WriteString(src[i:end])
			i = end
			continue
		}

		if c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '*':
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					return out.String() // unterminated: drop the rest
				}
				i += 2 + end + 2
				continue
			case '/':
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					return out.String()
				}
				i += nl // keep the newline
				continue
			}
		}

		out.WriteByte(c)
		i++
	}
	return out.String()
}

// findStringEnd returns the index just past the literal opened at start.
// The opening delimiter determines the closing one; escape sequences are not
// interpreted, matching observed usage in the scanned sources.
func findStringEnd(src string, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		if src[i] == quote {
			return i + 1
		}
	}
	return len(src)
}

// parseStringLiteral expects a string literal at pos, after optional
// whitespace. Returns the unquoted content and the index just past the
// closing delimiter.
func parseStringLiteral(src string, pos int) (string, int, bool) {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}
	if pos >= len(src) {
		return "", 0, false
	}
	q := src[pos]
	if q != '\'' && q != '"' && q != '`' {
		return "", 0, false
	}
	end := findStringEnd(src, pos)
	if end == pos+1 || src[end-1] != q { // unterminated literal
		return "", 0, false
	}
	return src[pos+1 : end-1], end, true
}

// splitArgs splits the argument list starting just past an opening
// parenthesis on top-level commas. Commas nested inside parentheses,
// brackets, braces, or string literals do not separate arguments. Returns
// the raw argument texts and the index just past the closing parenthesis.
// An unterminated list yields ok=false.
func splitArgs(src string, pos int) ([]string, int, bool) {
	var args []string
	depth := 0
	argStart := pos

	for i := pos; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\'', '"', '`':
			i = findStringEnd(src, i) - 1
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				if c != ')' {
					return nil, 0, false
				}
				args = append(args, src[argStart:i])
				return args, i + 1, true
			}
			depth--
		case ',':
			if depth == 0 {
				args = append(args, src[argStart:i])
				argStart = i + 1
			}
		}
	}
	return nil, 0, false
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if q != '\'' && q != '"' && q != '`' {
		return "", false
	}
	if s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// trimArgNoise trims whitespace and trailing close-paren/semicolon noise
// from a raw argument token.
func trimArgNoise(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ");")
	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// buildLineOffsets records the byte offset at which each line starts.
func buildLineOffsets(src string) []int {
	offsets := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineAt returns the 1-based line containing the byte offset.
func lineAt(offsets []int, pos int) int {
	return sort.Search(len(offsets), func(i int) bool {
		return offsets[i] > pos
	})
}

// windowLimit returns the byte offset past which the paired setAlert call
// may no longer start: the end of the window-th line after the stream call,
// or end of text.
func windowLimit(offsets []int, line, windowLines, textLen int) int {
	last := line + windowLines // 1-based index of the first line past the window
	if last >= len(offsets) {
		return textLen
	}
	return offsets[last]
}
