package exprxform

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

var bareEventNames = map[string]bool{
	"frameRate":    true,
	"keyPressed":   true,
	"mousePressed": true,
}

// rewriteBareEventNames renames bare `frameRate`, `keyPressed`,
// `mousePressed` (read as values, not invoked) to their `__`-prefixed
// synthetic form, since the host runtime exposes them as live properties
// rather than plain identifiers.
func rewriteBareEventNames(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		matched := false
		for name := range bareEventNames {
			j, ok := matchWord(s, i, name)
			if !ok {
				continue
			}
			k := skipSpace(s, j)
			if k < len(s) && s[k] == '"' {
				if kind, _, _, ok2 := scanAtomRef(s, k); ok2 && kind == atom.KindParen {
					break // used as a call, leave it alone
				}
			}
			out.WriteString("__" + name)
			i = j
			matched = true
			break
		}
		if matched {
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

var primitiveParseNames = map[string]string{
	"boolean": "parseBoolean",
	"byte":    "parseByte",
	"char":    "parseChar",
	"float":   "parseFloat",
	"int":     "parseInt",
}

// rewritePrimitiveParseCalls implements `boolean(x)` → `parseBoolean(x)`
// (and byte|char|float|int analogues).
func rewritePrimitiveParseCalls(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		matched := false
		for name, repl := range primitiveParseNames {
			j, ok := matchWord(s, i, name)
			if !ok {
				continue
			}
			if j >= len(s) || s[j] != '"' {
				continue
			}
			kind, _, next, ok2 := scanAtomRef(s, j)
			if !ok2 || kind != atom.KindParen {
				continue
			}
			out.WriteString(repl)
			out.WriteString(s[j:next])
			i = next
			matched = true
			break
		}
		if matched {
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// rewritePixelsProxy implements the `pixels` proxy rewrites in priority
// order: indexed assignment, indexed read, `.length`, plain assignment,
// then a bare read. A `pixels` reference is always the entirety of its
// statement's left/right-hand side, so the assignment forms consume the
// remainder of the text once matched.
func rewritePixelsProxy(s string, d Deps) string {
	i := 0
	for i < len(s) {
		j, ok := matchWord(s, i, "pixels")
		if !ok {
			i++
			continue
		}
		rest := s[j:]

		if kind, idx, next, ok2 := scanAtomRef(rest, 0); ok2 && kind == atom.KindBracket {
			entry := d.Atoms.MustGet(idx)
			indexExpr := strings.TrimSuffix(strings.TrimPrefix(entry.Text, "["), "]")
			after := skipSpace(rest, next)
			if after < len(rest) && rest[after] == '=' && !(after+1 < len(rest) && rest[after+1] == '=') {
				value := rest[skipSpace(rest, after+1):]
				return s[:i] + "pixels.setPixel(" + indexExpr + "," + value + ")"
			}
			return s[:i] + "pixels.getPixel(" + indexExpr + ")" + rest[next:]
		}

		if strings.HasPrefix(rest, ".length") {
			after := len(".length")
			if after >= len(rest) || !isIdentPart(rest[after]) {
				return s[:i] + "pixels.getLength()" + rest[after:]
			}
		}

		after := skipSpace(rest, 0)
		if after < len(rest) && rest[after] == '=' && !(after+1 < len(rest) && rest[after+1] == '=') {
			value := rest[skipSpace(rest, after+1):]
			return s[:i] + "pixels.set(" + value + ")"
		}

		return s[:i] + "pixels.toArray()" + rest
	}
	return s
}
