package lexer

import (
	"strconv"
	"strings"
)

// EscapeIdentifiers implements spec.md §4.1's `$`-protection pass: any
// existing `__xHHHH` escape sequence in the source is itself escaped to
// `__x005F_xHHHH` (so it isn't mistaken for a synthetic escape introduced
// here), then every literal `$` is rewritten to `__x0024`. This lets the
// renderer freely mint `$this_1`, `$superCstr` and friends downstream
// without colliding with anything the user wrote.
func EscapeIdentifiers(src string) string {
	src = escapeExistingXEscapes(src)
	return strings.ReplaceAll(src, "$", "__x0024")
}

// UnescapeIdentifiers reverses EscapeIdentifiers after rendering: restores
// `__x0024` to `$` and `__x005F_xHHHH` back to `__xHHHH`.
func UnescapeIdentifiers(src string) string {
	src = strings.ReplaceAll(src, "__x0024", "$")
	return unescapeXEscapes(src)
}

// escapeExistingXEscapes rewrites every `__x` followed by 4 hex digits into
// `__x005F_x` followed by the same 4 hex digits.
func escapeExistingXEscapes(src string) string {
	var out strings.Builder
	out.Grow(len(src))
	n := len(src)
	for i := 0; i < n; i++ {
		if isXEscapeAt(src, i) {
			out.WriteString("__x005F_x")
			out.WriteString(src[i+3 : i+7])
			i += 6
			continue
		}
		out.WriteByte(src[i])
	}
	return out.String()
}

func unescapeXEscapes(src string) string {
	return strings.ReplaceAll(src, "__x005F_x", "__x")
}

// isXEscapeAt reports whether src[i:] begins with `__x` followed by 4 hex
// digits.
func isXEscapeAt(src string, i int) bool {
	if i+7 > len(src) {
		return false
	}
	if src[i:i+3] != "__x" {
		return false
	}
	for k := i + 3; k < i+7; k++ {
		if !isHexDigit(src[k]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexEscape renders a rune as the `__xHHHH` form used by identifier
// escaping, for use by callers that need to mint their own escapes (kept
// here so the encoding stays in one place).
func hexEscape(r rune) string {
	h := strings.ToUpper(strconv.FormatInt(int64(r), 16))
	for len(h) < 4 {
		h = "0" + h
	}
	return "__x" + h
}
