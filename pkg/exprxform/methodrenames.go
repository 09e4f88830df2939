package exprxform

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// renamedMethods is the fixed set of instance-method calls rewritten to a
// free function taking the receiver as an explicit first argument
// (spec.md §4.5), applied iteratively until no chain remains.
var renamedMethods = map[string]string{
	"replace":          "__replace",
	"replaceAll":       "__replaceAll",
	"replaceFirst":     "__replaceFirst",
	"contains":         "__contains",
	"equals":           "__equals",
	"equalsIgnoreCase": "__equalsIgnoreCase",
	"hashCode":         "__hashCode",
	"toCharArray":      "__toCharArray",
	"printStackTrace":  "__printStackTrace",
	"split":            "__split",
	"startsWith":       "__startsWith",
	"endsWith":         "__endsWith",
	"codePointAt":      "__codePointAt",
	"matches":          "__matches",
}

// rewriteRenamedMethodCallsOnce rewrites the first `subj.m(args)` call whose
// method name is in renamedMethods to `__m(subj, args)`, reporting whether a
// rewrite was made so the caller can iterate to a fixed point (a rewritten
// subject may itself be the receiver of another renamed call).
func rewriteRenamedMethodCallsOnce(s string, d Deps) (string, bool) {
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				if rewritten, changed := tryRenameAfterSubject(s, i, next, d); changed {
					return rewritten, true
				}
				i = next
				continue
			}
			i++
			continue
		}
		if !isIdentStart(s[i]) {
			i++
			continue
		}
		path, end, ok := scanIdentPath(s, i)
		if !ok {
			i++
			continue
		}
		dot := strings.LastIndexByte(path, '.')
		if dot < 0 {
			i = end
			continue
		}
		method := path[dot+1:]
		repl, isRename := renamedMethods[method]
		if !isRename || end >= len(s) || s[end] != '"' {
			i = end
			continue
		}
		kind, idx, next, ok2 := scanAtomRef(s, end)
		if !ok2 || kind != atom.KindParen {
			i = end
			continue
		}
		subj := path[:dot]
		call := renamedCall(repl, subj, d.Atoms.MustGet(idx).Text)
		return s[:i] + call + s[next:], true
	}
	return s, false
}

// tryRenameAfterSubject handles the case where the receiver is itself an
// atom (e.g. a call result: `f().replace(x)`), so the dotted-path scan above
// never sees it as one identifier.
func tryRenameAfterSubject(s string, start, subjEnd int, d Deps) (string, bool) {
	if subjEnd >= len(s) || s[subjEnd] != '.' {
		return s, false
	}
	name, end, ok := scanPlainIdent(s, subjEnd+1)
	if !ok {
		return s, false
	}
	repl, isRename := renamedMethods[name]
	if !isRename || end >= len(s) || s[end] != '"' {
		return s, false
	}
	kind, idx, next, ok2 := scanAtomRef(s, end)
	if !ok2 || kind != atom.KindParen {
		return s, false
	}
	subj := s[start:subjEnd]
	call := renamedCall(repl, subj, d.Atoms.MustGet(idx).Text)
	return s[:start] + call + s[next:], true
}

func renamedCall(repl, subj, parenAtomText string) string {
	args := strings.TrimSuffix(strings.TrimPrefix(parenAtomText, "("), ")")
	if strings.TrimSpace(args) == "" {
		return repl + "(" + subj + ")"
	}
	return repl + "(" + subj + ", " + args + ")"
}

// rewriteInstanceofOnce rewrites the first `x instanceof T` to
// `__instanceof(x, T)`, reporting whether a rewrite was made so the caller
// can iterate to a fixed point.
func rewriteInstanceofOnce(s string) (string, bool) {
	i := 0
	for i < len(s) {
		var subjEnd int
		switch {
		case s[i] == '"':
			_, _, next, ok := scanAtomRef(s, i)
			if !ok {
				i++
				continue
			}
			subjEnd = next
		case isIdentStart(s[i]):
			_, end, ok := scanIdentPath(s, i)
			if !ok {
				i++
				continue
			}
			subjEnd = end
		default:
			i++
			continue
		}
		k := skipSpace(s, subjEnd)
		j, ok := matchWord(s, k, "instanceof")
		if !ok {
			i++
			continue
		}
		j = skipSpace(s, j)
		typeName, end2, ok2 := scanIdentPath(s, j)
		if !ok2 {
			i++
			continue
		}
		subj := s[i:subjEnd]
		return s[:i] + "__instanceof(" + subj + ", " + typeName + ")" + s[end2:], true
	}
	return s, false
}
