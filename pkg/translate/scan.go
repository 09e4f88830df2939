package translate

import "github.com/kent-wong/my-processing/pkg/atom"

// scanAtomRef scans a `"K N"` placeholder starting at i, mirroring the
// identical helper duplicated across pkg/classbody, pkg/exprxform,
// pkg/stmtxform and pkg/render — this package's established idiom keeps
// each transform stage's scanning helpers local rather than centralized.
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
