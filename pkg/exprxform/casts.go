package exprxform

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// castStopChars are the top-level operators/punctuation that terminate the
// argument of an `__int_cast` rewrite (spec.md §4.5).
const castStopChars = ",]}?:*+-/^|%&~<>="

// rewriteCastDeletion implements parenthesized type-cast deletion: `(T)` (no
// array dims, or a single empty `[]` dim) immediately preceding a primary
// expression is dropped, except `(int)` which is rewritten to
// `__int_cast(arg)` where arg runs up to the next top-level stop character.
// `(T[])` with a nonempty dim is not a cast at all and is left untouched,
// matching the reference behavior's documented edge case.
func rewriteCastDeletion(s string, d Deps) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		kind, idx, next, ok := scanAtomRef(s, i)
		if !ok || kind != atom.KindParen {
			out.WriteByte(s[i])
			i++
			continue
		}
		entry := d.Atoms.MustGet(idx)
		inner := strings.TrimSuffix(strings.TrimPrefix(entry.Text, "("), ")")
		typeName, isCast := castTypeFromText(inner, d)
		if isCast {
			k := skipSpace(s, next)
			pk, _, _, isAtom := scanAtomRef(s, k)
			isCast = (isAtom && pk == atom.KindParen) || (k < len(s) && (isIdentStart(s[k]) || isDigit(s[k]) || s[k] == '\''))
		}
		if !isCast {
			out.WriteString(s[i:next])
			i = next
			continue
		}
		if typeName == "int" {
			argEnd := scanCastArg(s, next)
			out.WriteString("__int_cast(")
			out.WriteString(s[next:argEnd])
			out.WriteString(")")
			i = argEnd
			continue
		}
		i = next
	}
	return out.String()
}

// castTypeFromText inspects the literal content between the parens and
// reports the cast's type name when it matches the "(T)" or
// "(T[])-with-empty-dim" shape; a nonempty array dim falls through to
// "not a cast" per the reference behavior's documented edge case.
func castTypeFromText(inner string, d Deps) (string, bool) {
	name, j, ok := scanIdentPath(inner, 0)
	if !ok {
		return "", false
	}
	j = skipSpace(inner, j)
	if j == len(inner) {
		return name, true
	}
	kind, idx, next, ok2 := scanAtomRef(inner, j)
	if !ok2 || kind != atom.KindBracket {
		return "", false
	}
	if next != len(inner) {
		return "", false
	}
	dimText := d.Atoms.MustGet(idx).Text
	dimInner := strings.TrimSuffix(strings.TrimPrefix(dimText, "["), "]")
	if strings.TrimSpace(dimInner) != "" {
		return "", false
	}
	return name, true
}

// scanCastArg scans the `__int_cast` argument starting at i, stopping at the
// next top-level stop character (skipping over atom placeholders whole so a
// stop character embedded in one doesn't end the scan early).
func scanCastArg(s string, i int) int {
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next
				continue
			}
		}
		if strings.IndexByte(castStopChars, s[i]) >= 0 {
			return i
		}
		i++
	}
	return i
}
