// Package translate implements spec.md §6's single external entry point:
// Translate runs one Processing sketch source through every pipeline stage
// (elision, generics erasure, atomization, declaration extraction, class
// body assembly, statement/expression transformation, metadata weighting,
// rendering and string reinjection) behind one call, threading a single
// session through all of them.
package translate

import (
	"sort"
	"strings"

	"github.com/kent-wong/my-processing/internal/resolve"
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/classbody"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/lexer"
	"github.com/kent-wong/my-processing/pkg/metaweight"
	"github.com/kent-wong/my-processing/pkg/render"
	"github.com/kent-wong/my-processing/pkg/session"
	"github.com/kent-wong/my-processing/pkg/stmtxform"
)

// Options is spec.md §6's single options record, threaded through
// unchanged: the default global scope, the aFunctions set and the $p.lib
// plugin registry.
type Options = resolve.Options

// Translate runs source through the full pipeline and returns the emitted
// program text.
func Translate(source string, opts Options) (string, error) {
	sess := session.New()

	elided := lexer.RunElisionStage(source, sess.Strings)
	stripped := lexer.StripGenerics(elided)
	topLevel, err := lexer.Atomize(stripped, sess.Atoms)
	if err != nil {
		return "", err
	}

	deps := classbody.Deps{Atoms: sess.Atoms, Session: sess}
	res := declare.Extract(topLevel, "", sess.Atoms)

	root := &ast.Root{}

	for _, idx := range sortedIntKeys(res.Classes) {
		root.Statements = append(root.Statements, deps.BuildDecl(res.Classes[idx], -1))
	}
	for _, idx := range sortedIntKeys(res.Methods) {
		root.Statements = append(root.Statements, deps.BuildFunction(res.Methods[idx], -1))
	}

	free := stripDeclPlaceholders(res.Text)
	freeBlock := stmtxform.TransformTopLevel(free, deps.StmtDeps(-1))
	root.Statements = append(root.Statements, freeBlock.Statements...)

	metaweight.Weigh(sess)

	return render.Program(root, sess, opts), nil
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// stripDeclPlaceholders removes every atom placeholder whose kind is one of
// the declaration kinds from s, mirroring pkg/classbody's private helper of
// the same name (this package's established per-package-helper idiom):
// once BuildDecl/BuildFunction have assembled a declaration, its
// placeholder in the extractor's remainder text is noise that
// stmtxform.TransformTopLevel must never see.
func stripDeclPlaceholders(s string) string {
	var out strings.Builder
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
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}
