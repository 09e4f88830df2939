// Package lexer implements the front end of the translation pipeline:
// string/char/regex/comment elision, identifier escaping, generics erasure
// and bracket atomization (spec.md §4.1–§4.3). Each function is a pure
// string-to-string (or string-to-atomized-stream) pass; none of them retain
// state across calls — all state lives in the atom/string tables passed in
// by the caller for the lifetime of one Translate invocation.
package lexer

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// disambiguators is the set of characters that, immediately preceding a
// `/`, mark it as the start of a regex literal rather than a division
// operator (spec.md §4.1).
const disambiguators = "[(=|&!^:?"

// RunElisionStage runs the full §4.1 pass over src: line-ending
// normalization, string/char/regex/comment elision into strTab, identifier
// escaping, and the `return\n` → `return ` normalization, returning the
// resulting text.
func RunElisionStage(src string, strTab *atom.StringTable) string {
	src = normalizeLineEndings(src)
	src = elideLiterals(src, strTab)
	src = EscapeIdentifiers(src)
	src = normalizeReturn(src)
	return src
}

func normalizeLineEndings(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return src
}

// elideLiterals walks src once, replacing string/char literals and regex
// literals with `'N'` placeholders recorded in strTab, and stripping
// comments to a single space (or newline, if the comment itself contained
// one) so downstream statement splitting still sees the same line count.
func elideLiterals(src string, strTab *atom.StringTable) string {
	var out strings.Builder
	out.Grow(len(src))

	lastSignificant := byte(0)
	n := len(src)
	for i := 0; i < n; {
		c := src[i]

		switch {
		case c == '"':
			lit, next := scanQuoted(src, i, '"')
			idx := strTab.Add(lit)
			out.WriteString(atom.StringPlaceholder(idx))
			lastSignificant = '\''
			i = next
			continue

		case c == '\'':
			lit, next := scanQuoted(src, i, '\'')
			idx := strTab.Add(lit)
			out.WriteString(atom.StringPlaceholder(idx))
			lastSignificant = '\''
			i = next
			continue

		case c == '/' && i+1 < n && src[i+1] == '/':
			j := i
			for j < n && src[j] != '\n' {
				j++
			}
			out.WriteByte(' ')
			i = j
			continue

		case c == '/' && i+1 < n && src[i+1] == '*':
			j := i + 2
			sawNewline := false
			for j+1 < n && !(src[j] == '*' && src[j+1] == '/') {
				if src[j] == '\n' {
					sawNewline = true
				}
				j++
			}
			j += 2
			if j > n {
				j = n
			}
			if sawNewline {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
			i = j
			continue

		case c == '/' && isRegexContext(lastSignificant):
			if lit, next, ok := scanRegex(src, i); ok {
				idx := strTab.Add(lit)
				out.WriteString(atom.StringPlaceholder(idx))
				lastSignificant = '\''
				i = next
				continue
			}
			out.WriteByte(c)
			lastSignificant = c
			i++
			continue

		default:
			out.WriteByte(c)
			if c != ' ' && c != '\t' && c != '\n' {
				lastSignificant = c
			}
			i++
		}
	}
	return out.String()
}

// isRegexContext reports whether prev is one of the disambiguating
// characters (or the very start of input, prev == 0) that licenses reading
// a following `/` as a regex literal rather than division.
func isRegexContext(prev byte) bool {
	if prev == 0 {
		return true
	}
	return strings.IndexByte(disambiguators, prev) >= 0
}

// scanQuoted scans a single- or double-quoted literal starting at src[i]
// (src[i] == quote), honoring backslash escapes, and returns the literal
// text (quotes included) and the index just past its closing quote.
func scanQuoted(src string, i int, quote byte) (string, int) {
	n := len(src)
	j := i + 1
	for j < n {
		if src[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		if src[j] == quote {
			j++
			break
		}
		if src[j] == '\n' {
			break
		}
		j++
	}
	return src[i:j], j
}

// scanRegex scans a `/pattern/flags` literal starting at src[i] (src[i] ==
// '/'). ok is false when no matching unescaped closing `/` is found on the
// same line, in which case the caller treats the `/` as an ordinary
// character.
func scanRegex(src string, i int) (string, int, bool) {
	n := len(src)
	j := i + 1
	for j < n && src[j] != '\n' {
		if src[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		if src[j] == '/' {
			j++
			for j < n && isAlpha(src[j]) {
				j++
			}
			return src[i:j], j, true
		}
		j++
	}
	return "", i, false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func normalizeReturn(src string) string {
	var out strings.Builder
	out.Grow(len(src))
	n := len(src)
	for i := 0; i < n; i++ {
		if matchesWord(src, i, "return") {
			out.WriteString("return")
			j := i + 6
			for j < n && (src[j] == ' ' || src[j] == '\t') {
				j++
			}
			if j < n && src[j] == '\n' {
				j++
				out.WriteByte(' ')
				i = j - 1
				continue
			}
			i += 5
			continue
		}
		out.WriteByte(src[i])
	}
	return out.String()
}

func matchesWord(src string, i int, word string) bool {
	if i+len(word) > len(src) || src[i:i+len(word)] != word {
		return false
	}
	if i > 0 && (isAlpha(src[i-1]) || isDigit(src[i-1]) || src[i-1] == '_') {
		return false
	}
	end := i + len(word)
	if end < len(src) && (isAlpha(src[end]) || isDigit(src[end]) || src[end] == '_') {
		return false
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
