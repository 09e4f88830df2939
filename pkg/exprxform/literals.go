package exprxform

import "strings"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// rewriteLeadingZeroNumerics strips leading zeros from a numeric literal
// when it carries a float suffix or a decimal point (`0010f` → `10f`, the
// suffix itself being removed later by rewriteFloatSuffix;
// `000.43` → `0.43`); a plain leading-zero integer with neither is left
// unchanged (`0010` unchanged), matching the reference behavior.
func rewriteLeadingZeroNumerics(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if !isDigit(s[i]) || (i > 0 && isIdentPart(s[i-1])) {
			out.WriteByte(s[i])
			i++
			continue
		}
		start := i
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		hasDot := false
		fracStart, fracEnd := j, j
		if j < len(s) && s[j] == '.' && j+1 < len(s) && isDigit(s[j+1]) {
			hasDot = true
			j++
			fracStart = j
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			fracEnd = j
		}
		hasSuffix := j < len(s) && (s[j] == 'f' || s[j] == 'F') && !(j+1 < len(s) && isIdentPart(s[j+1]))

		intPart := s[start:fracStart]
		if hasDot {
			intPart = s[start : fracStart-1]
		}
		if !hasDot && !hasSuffix {
			out.WriteString(s[start:j])
			i = j
			continue
		}
		trimmed := strings.TrimLeft(intPart, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		out.WriteString(trimmed)
		if hasDot {
			out.WriteByte('.')
			out.WriteString(s[fracStart:fracEnd])
		}
		if hasSuffix {
			out.WriteByte(s[j])
			j++
		}
		i = j
	}
	return out.String()
}

// rewriteFloatSuffix strips a trailing `f`/`F` float suffix from a numeric
// literal (`3.0f` → `3.0`).
func rewriteFloatSuffix(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if !isDigit(s[i]) || (i > 0 && isIdentPart(s[i-1])) {
			out.WriteByte(s[i])
			i++
			continue
		}
		start := i
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '.' && j+1 < len(s) && isDigit(s[j+1]) {
			j++
			for j < len(s) && isDigit(s[j]) {
				j++
			}
		}
		if j < len(s) && (s[j] == 'f' || s[j] == 'F') && !(j+1 < len(s) && isIdentPart(s[j+1])) {
			out.WriteString(s[start:j])
			i = j + 1
			continue
		}
		out.WriteString(s[start:j])
		i = j
	}
	return out.String()
}

// ensureSpacesAroundPercent inserts a space on either side of `%` when
// missing, so the regex-context heuristic in the elider's earlier pass
// (spec.md §4.1) cannot later misread a tightly-packed `%` as something
// else once this text is re-lexed downstream.
func ensureSpacesAroundPercent(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}
		if i > 0 && s[i-1] != ' ' {
			out.WriteByte(' ')
		}
		out.WriteByte('%')
		if i+1 < len(s) && s[i+1] != ' ' {
			out.WriteByte(' ')
		}
	}
	return out.String()
}
