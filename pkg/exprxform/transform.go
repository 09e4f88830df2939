// Package exprxform implements spec.md §4.5, the expression transformer:
// a fixed sequence of targeted textual rewrites applied to one already
// atomized expression's text (array creation, casts, color literals,
// instanceof, super/this calls, the pixel proxy, method renames and numeric
// literal normalization). Character literals are still string-table
// placeholders here; pkg/render boxes them when it restores them.
package exprxform

import (
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
)

// Deps are the session-scoped collaborators Transform needs: the atom
// table (to recognize bracket-atom placeholders by kind) and, for `new
// T() { ... }`, a callback that builds the synthetic inline class's body
// from its base name and its `{...}` atom index. Supplying this as a
// function value rather than importing pkg/classbody directly keeps
// exprxform from depending on the package that depends on it.
type Deps struct {
	Atoms            *atom.Table
	BuildInlineClass func(baseName string, bodyAtomIdx int) *ast.ClassBody
	NextSyntheticID  func() int
}

// Transform lowers one expression's atomized text into its final rendered
// form, applying every rewrite in spec.md §4.5 in sequence (the
// chain-rewrites iterate internally to a fixed point) and returns the
// resulting *ast.Expression.
func Transform(text string, d Deps) *ast.Expression {
	text = rewriteArrayLiteralCreation(text, d)
	text, inline := rewriteInlineClassCreation(text, d)
	text = rewriteMultiDimArrayCreation(text, d)
	text = rewriteArrayLength(text)
	text = rewriteColorLiteral(text)
	text = rewriteCastDeletion(text, d)
	text = rewriteSuperThisCalls(text)
	text = rewriteLeadingZeroNumerics(text)
	text = rewriteFloatSuffix(text)
	text = ensureSpacesAroundPercent(text)
	text = rewriteBareEventNames(text)
	text = rewritePrimitiveParseCalls(text)
	text = rewritePixelsProxy(text, d)
	text = fixedPoint(text, func(t string) (string, bool) { return rewriteRenamedMethodCallsOnce(t, d) })
	text = fixedPoint(text, rewriteInstanceofOnce)

	return &ast.Expression{Text: text, Inline: inline}
}

// fixedPoint applies pass repeatedly until it reports no further change,
// matching the reference behavior for chain-rewrites (method renames,
// instanceof) called out in spec.md §4.5 and §9.
func fixedPoint(text string, pass func(string) (string, bool)) string {
	for {
		next, changed := pass(text)
		if !changed {
			return next
		}
		text = next
	}
}
