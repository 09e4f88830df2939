package render

import "github.com/kent-wong/my-processing/pkg/atom"

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// scanBareIdent scans one non-dotted identifier run starting at i (unlike
// the sibling packages' scanIdentPath, this never crosses a `.` — render
// only ever needs to classify the head of a dotted chain; everything
// after the first dot is already a qualified property name).
func scanBareIdent(s string, i int) (string, int) {
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", i
	}
	j := i + 1
	for j < len(s) && isIdentPart(s[j]) {
		j++
	}
	return s[i:j], j
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

// scanStringToken scans a `'N'` string-table placeholder starting at i.
func scanStringToken(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '\'' {
		return i, false
	}
	j := i + 1
	for j < len(s) && s[j] != '\'' {
		j++
	}
	if j >= len(s) {
		return i, false
	}
	j++
	if _, ok := atom.ParseStringToken(s[i:j]); !ok {
		return i, false
	}
	return j, true
}

// isCallAt reports whether a Paren atom placeholder (a call's argument
// list) begins at the first non-space position at or after i.
func isCallAt(s string, i int) bool {
	j := skipSpace(s, i)
	kind, _, _, ok := scanAtomRef(s, j)
	return ok && kind == atom.KindParen
}

// lastIdentIn returns the last bare identifier found in text — used to
// pull the parameter name out of a catch clause's raw "Type name" prefix.
func lastIdentIn(text string) string {
	last := ""
	i := 0
	for i < len(text) {
		if isIdentStart(text[i]) {
			name, end := scanBareIdent(text, i)
			last = name
			i = end
			continue
		}
		i++
	}
	return last
}

// thisIsMemberAccess reports whether the `this` token ending at end is
// plain member access (`this.field`) rather than a call or standalone
// value (`this.method(...)`, `this()`, bare `this`): true only when `this`
// is immediately followed by `.name` where name is itself not called.
func thisIsMemberAccess(text string, end int) bool {
	j := skipSpace(text, end)
	if j >= len(text) || text[j] != '.' {
		return false
	}
	_, nameEnd := scanBareIdent(text, j+1)
	if nameEnd == j+1 {
		return false
	}
	return !isCallAt(text, nameEnd)
}

var reservedWord = map[string]bool{
	"new": true, "true": true, "false": true, "null": true, "undefined": true,
	"function": true, "typeof": true, "in": true, "instanceof": true,
	"void": true, "delete": true, "var": true, "return": true, "else": true,
}
