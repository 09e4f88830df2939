package exprxform

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// rewriteSuperThisCalls implements `super(…)` → `$superCstr(…)`,
// `super.` → `$super.`, and `this(…)` → `$constr(…)`.
func rewriteSuperThisCalls(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "super.") && (i == 0 || !isIdentPart(s[i-1])) {
			out.WriteString("$super.")
			i += len("super.")
			continue
		}
		if j, ok := matchWord(s, i, "super"); ok {
			k := skipSpace(s, j)
			if k < len(s) && s[k] == '"' {
				if kind, _, next, ok2 := scanAtomRef(s, k); ok2 && kind == atom.KindParen {
					out.WriteString("$superCstr")
					out.WriteString(s[j:next])
					i = next
					continue
				}
			}
			if j < len(s) && s[j] == '.' {
				out.WriteString("$super.")
				i = j + 1
				continue
			}
			out.WriteString("super")
			i = j
			continue
		}
		if j, ok := matchWord(s, i, "this"); ok {
			k := skipSpace(s, j)
			if k < len(s) && s[k] == '"' {
				if kind, _, next, ok2 := scanAtomRef(s, k); ok2 && kind == atom.KindParen {
					out.WriteString("$constr")
					out.WriteString(s[j:next])
					i = next
					continue
				}
			}
			out.WriteString("this")
			i = j
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}
