package exprxform

import (
	"strconv"
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
)

// rewriteArrayLiteralCreation implements `new T[] {...}` → `{...}`: drop
// the `new T[]` prefix, keeping the brace-atom initializer as-is.
func rewriteArrayLiteralCreation(s string, d Deps) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		start := i
		j, ok := matchWord(s, i, "new")
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}
		j = skipSpace(s, j)
		_, j2, ok2 := scanIdentPath(s, j)
		if !ok2 {
			out.WriteByte(s[i])
			i++
			continue
		}
		j = skipSpace(s, j2)
		// zero or more empty/non-empty bracket atoms (array dims)
		dims := 0
		for {
			kind, idx, next, ok3 := scanAtomRef(s, j)
			if !ok3 || kind != atom.KindBracket {
				break
			}
			_ = idx
			dims++
			j = skipSpace(s, next)
		}
		if dims == 0 {
			out.WriteByte(s[i])
			i++
			continue
		}
		// must be followed by a brace atom to be an array-literal creation
		kind, _, next, ok4 := scanAtomRef(s, j)
		if !ok4 || kind != atom.KindBrace {
			out.WriteByte(s[i])
			i++
			continue
		}
		out.WriteString(s[j:next])
		i = next
		_ = start
	}
	return out.String()
}

// rewriteInlineClassCreation implements `new T() { body }` → a synthetic
// InlineClass named `T$classID`. Returns the text with the match spliced
// out (replaced with nothing — the caller's Expression.Inline carries the
// node) when a match is found; inline is nil otherwise. Only the first
// top-level match is honored per expression, matching how the reference
// transformer treats `new T(){...}` as the entire expression it appears in
// (it is never combined with other operators at the same nesting level).
func rewriteInlineClassCreation(s string, d Deps) (string, *ast.InlineClass) {
	i := 0
	for i < len(s) {
		j, ok := matchWord(s, i, "new")
		if !ok {
			i++
			continue
		}
		j = skipSpace(s, j)
		baseName, j2, ok2 := scanIdentPath(s, j)
		if !ok2 {
			i++
			continue
		}
		j = skipSpace(s, j2)
		kind, _, next, ok3 := scanAtomRef(s, j)
		if !ok3 || kind != atom.KindParen {
			i++
			continue
		}
		j = skipSpace(s, next)
		bkind, bidx, next2, ok4 := scanAtomRef(s, j)
		if !ok4 || bkind != atom.KindBrace {
			i++
			continue
		}

		id := d.NextSyntheticID()
		syntheticName := baseName + "$" + strconv.Itoa(id)
		body := d.BuildInlineClass(baseName, bidx)
		body.Name = syntheticName
		inline := &ast.InlineClass{SyntheticName: syntheticName, BaseName: baseName, Body: body}

		return s[:i] + s[next2:], inline
	}
	return s, nil
}

// rewriteMultiDimArrayCreation implements `new T[e][f]...` →
// `$p.createJavaArray('T', [e,f,...])`, where each `[e]` is a non-empty
// bracket atom holding a dimension expression.
func rewriteMultiDimArrayCreation(s string, d Deps) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		j, ok := matchWord(s, i, "new")
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}
		j = skipSpace(s, j)
		baseName, j2, ok2 := scanIdentPath(s, j)
		if !ok2 {
			out.WriteByte(s[i])
			i++
			continue
		}
		j = skipSpace(s, j2)
		var dims []string
		for {
			kind, idx, next, ok3 := scanAtomRef(s, j)
			if !ok3 || kind != atom.KindBracket {
				break
			}
			entry := d.Atoms.MustGet(idx)
			inner := strings.TrimSuffix(strings.TrimPrefix(entry.Text, "["), "]")
			if strings.TrimSpace(inner) == "" {
				return out.String() + s[i:]
			}
			dims = append(dims, inner)
			j = skipSpace(s, next)
		}
		if len(dims) == 0 {
			out.WriteByte(s[i])
			i++
			continue
		}
		out.WriteString("$p.createJavaArray('" + baseName + "', [" + strings.Join(dims, ", ") + "])")
		i = j
	}
	return out.String()
}

// rewriteArrayLength implements `.length()` → `.length`.
func rewriteArrayLength(s string) string {
	return strings.ReplaceAll(s, ".length()", ".length")
}
