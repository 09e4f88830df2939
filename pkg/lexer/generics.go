package lexer

import "strings"

// StripGenerics implements spec.md §4.2: repeatedly erase a balanced
// `<...>` type-parameter list — identifiers, dotted names, `?`, `extends`,
// `super`, commas and `[]` — provided it isn't flanked by `<` on the left
// (so `<<` is left alone) or `=` on the right (so `<=` is left alone).
// Iterates to a fixed point because erasing an inner `<...>` can expose an
// outer one that wasn't balanced before.
func StripGenerics(src string) string {
	for {
		next, changed := stripOnePass(src)
		if !changed {
			return next
		}
		src = next
	}
}

func stripOnePass(src string) (string, bool) {
	var out strings.Builder
	out.Grow(len(src))
	changed := false
	n := len(src)
	for i := 0; i < n; i++ {
		if src[i] == '<' && !precededByLess(src, i) {
			if end, ok := matchGenericSpan(src, i); ok {
				changed = true
				i = end
				continue
			}
		}
		out.WriteByte(src[i])
	}
	return out.String(), changed
}

func precededByLess(src string, i int) bool {
	return i > 0 && src[i-1] == '<'
}

// matchGenericSpan attempts to match a balanced `<...>` generic argument
// list starting at src[i] == '<'. Returns the index of the closing '>' when
// the contents are all type-parameter-shaped text and the character after
// the '>' isn't '=' (to avoid eating `<=`).
func matchGenericSpan(src string, i int) (int, bool) {
	n := len(src)
	depth := 0
	j := i
	for j < n {
		switch src[j] {
		case '<':
			depth++
			j++
		case '>':
			depth--
			j++
			if depth == 0 {
				if j < n && src[j] == '=' {
					return 0, false
				}
				if !isGenericBody(src[i+1 : j-1]) {
					return 0, false
				}
				return j - 1, true
			}
		default:
			if !isGenericBodyChar(src[j]) {
				return 0, false
			}
			j++
		}
	}
	return 0, false
}

func isGenericBody(body string) bool {
	for i := 0; i < len(body); i++ {
		if !isGenericBodyChar(body[i]) {
			return false
		}
	}
	return true
}

// isGenericBodyChar allows identifier characters, `.`, `,`, `?`, `[`, `]`,
// whitespace, and the bare keywords `extends`/`super` (checked a character
// at a time here since they're just identifier runs already permitted).
func isGenericBodyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == ',', c == '?', c == '[', c == ']':
		return true
	case c == ' ', c == '\t', c == '\n':
		return true
	}
	return false
}
