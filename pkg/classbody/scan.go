package classbody

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

// matchWord reports whether s[i:] begins with word as a standalone
// identifier, returning the index just past it when so.
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

// scanIdentPath scans a dotted identifier chain (`a.b.c`) starting at i.
func scanIdentPath(s string, i int) (string, int, bool) {
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", i, false
	}
	j := i + 1
	for j < len(s) && isIdentPart(s[j]) {
		j++
	}
	for j < len(s) && s[j] == '.' && j+1 < len(s) && isIdentStart(s[j+1]) {
		j++
		for j < len(s) && isIdentPart(s[j]) {
			j++
		}
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

func strTrim(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// hasModifierWord reports whether word appears as a standalone identifier
// anywhere in text, used to sniff `static` out of a raw declaration header
// or field segment (the extractor doesn't keep a parsed modifier list).
func hasModifierWord(text, word string) bool {
	for i := 0; i+len(word) <= len(text); i++ {
		if end, ok := matchWord(text, i, word); ok {
			_ = end
			return true
		}
	}
	return false
}

// splitTopLevelCommas splits s on commas that aren't inside an atom
// placeholder, mirroring the bracket-skipping scanners in the sibling
// transform packages.
func splitTopLevelCommas(s string) []string {
	var parts []string
	var cur []byte
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				cur = append(cur, s[i:next]...)
				i = next
				continue
			}
		}
		if s[i] == ',' {
			parts = append(parts, string(cur))
			cur = nil
			i++
			continue
		}
		cur = append(cur, s[i])
		i++
	}
	parts = append(parts, string(cur))
	return parts
}

// stripDeclPlaceholders removes every atom placeholder whose kind is one of
// the declaration kinds (class/method/constructor/function) from s, since
// those spans were already assembled by BuildDecl/buildMethod/etc.; what
// remains is the free-form text SplitFields and the trailing-misc fallback
// operate on.
func stripDeclPlaceholders(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			if kind, _, next, ok := scanAtomRef(s, i); ok {
				switch kind {
				case atom.KindClass, atom.KindMethod, atom.KindConstructor, atom.KindFunction:
					i = next
					continue
				}
			}
		}
		out = append(out, s[i])
		i++
	}
	return string(out)
}
