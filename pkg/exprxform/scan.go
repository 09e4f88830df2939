package exprxform

import "github.com/kent-wong/my-processing/pkg/atom"

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.'
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// skipSpace returns the first index >= i that isn't whitespace.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// matchWord reports whether s[i:] begins with word as a standalone
// identifier (not a prefix of a longer identifier), returning the index
// just past it when so.
func matchWord(s string, i int, word string) (int, bool) {
	if i+len(word) > len(s) || s[i:i+len(word)] != word {
		return 0, false
	}
	if i > 0 && isIdentPart(s[i-1]) {
		return 0, false
	}
	end := i + len(word)
	if end < len(s) && isIdentPart(s[end]) {
		return 0, false
	}
	return end, true
}

// scanIdentPath scans a dotted identifier (`Foo`, `pkg.Foo`) starting at i.
func scanIdentPath(s string, i int) (string, int, bool) {
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", i, false
	}
	j := i + 1
	for j < len(s) && isIdentPart(s[j]) {
		j++
	}
	return s[i:j], j, true
}

// scanPlainIdent scans a single (non-dotted) identifier starting at i.
func scanPlainIdent(s string, i int) (string, int, bool) {
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", i, false
	}
	j := i + 1
	for j < len(s) && (isIdentStart(s[j]) || (s[j] >= '0' && s[j] <= '9')) {
		j++
	}
	return s[i:j], j, true
}

// scanAtomRef scans a `"K N"` placeholder starting at i.
func scanAtomRef(s string, i int) (atom.Kind, int, int, bool) {
	if i >= len(s) || s[i] != '"' {
		return 0, 0, i, false
	}
	j := i + 1
	for j < len(s) && s[j] != '"' {
		j++
	}
	if j >= len(s) {
		return 0, 0, i, false
	}
	j++
	kind, idx, ok := atom.ParseToken(s[i:j])
	if !ok {
		return 0, 0, i, false
	}
	return kind, idx, j, true
}
