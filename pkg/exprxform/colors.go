package exprxform

import "strings"

// rewriteColorLiteral implements `#RRGGBB` → `0xFFRRGGBB`: a `#` followed by
// exactly six hex digits, not itself part of a longer identifier/hex run.
func rewriteColorLiteral(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '#' {
			out.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isHexDigit(s[j]) {
			j++
		}
		if j-i-1 != 6 {
			out.WriteByte(s[i])
			i++
			continue
		}
		out.WriteString("0xFF")
		out.WriteString(s[i+1 : j])
		i = j
	}
	return out.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
