package atom

import (
	"strconv"
	"strings"
)

// StringTable is the append-only registry of elided string, char and regex
// literal fragments (spec.md §3 "String table", §4.1). Unlike the atom
// table's 1-based placeholder numbering, a string placeholder carries the
// raw 0-based table index, exactly as spec.md §4.1 specifies: "replaced by
// 'N' (the integer index as decimal in quotes)".
type StringTable struct {
	literals []string
}

// NewStringTable returns an empty string table.
func NewStringTable() *StringTable {
	return &StringTable{literals: make([]string, 0, 32)}
}

// Add records a literal fragment (including its surrounding quotes/slashes
// exactly as they appeared in the source) and returns its index.
func (s *StringTable) Add(literal string) int {
	idx := len(s.literals)
	s.literals = append(s.literals, literal)
	return idx
}

// Get returns the literal fragment recorded at idx.
func (s *StringTable) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(s.literals) {
		return "", false
	}
	return s.literals[idx], true
}

// Len reports how many literals have been recorded.
func (s *StringTable) Len() int { return len(s.literals) }

// StringPlaceholder builds the `'N'` placeholder for a just-recorded literal.
func StringPlaceholder(idx int) string {
	var b strings.Builder
	b.WriteByte('\'')
	b.WriteString(strconv.Itoa(idx))
	b.WriteByte('\'')
	return b.String()
}

// ParseStringToken parses a `'N'` placeholder back into its table index.
func ParseStringToken(s string) (idx int, ok bool) {
	if len(s) < 3 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return 0, false
	}
	n, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
