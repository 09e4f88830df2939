package render

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/ast"
)

// renderExpr renders one *ast.Expression. A non-nil Inline means the
// expression was a Processing `new Base(){ ... }` anonymous-subclass
// literal (pkg/exprxform's inline-class-creation pass) — it renders as a
// standalone `new (<IIFE>)()` at the expression's position instead of
// text-expanding e.Text (which, for this node, is already empty — see
// pkg/exprxform.Transform's inline-class handling).
func (r *renderer) renderExpr(e *ast.Expression) string {
	if e == nil {
		return ""
	}
	if e.Inline != nil {
		return r.renderInlineClass(e.Inline)
	}
	return r.expandAndResolve(e.Text)
}

// expandAndResolve walks one piece of already-transformed expression text,
// restoring every string-table and atom placeholder and resolving every
// bare identifier it finds outside of those placeholders. A restored
// single-quoted (character) literal is boxed as `new $p.Character('c')`.
//
// Nested bracket atoms (a call's argument list, a parenthesized
// sub-expression, an array-literal body) are expanded recursively, but
// only for bracket-restoration and identifier resolution — the textual
// rewrite passes in pkg/exprxform (method renames, cast deletion,
// instanceof, ...) never ran on that nested text in the first place
// (pkg/exprxform.Transform only ever sees the single top-level text handed
// to it by pkg/classbody/pkg/stmtxform, not the contents of the atoms it
// references), so re-running identifier resolution on the restored text is
// the only pass this renderer can correctly re-apply here without
// re-registering classes into the session after pkg/metaweight has already
// weighed it. See the "Deviation" note in DESIGN.md's pkg/render section.
func (r *renderer) expandAndResolve(text string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]

		if c == '\'' {
			if end, ok := scanStringToken(text, i); ok {
				idx, _ := atom.ParseStringToken(text[i:end])
				lit, _ := r.sess.Strings.Get(idx)
				if len(lit) >= 3 && lit[0] == '\'' {
					lit = "new $p.Character(" + lit + ")"
				}
				b.WriteString(lit)
				i = end
				continue
			}
		}

		if c == '"' {
			if kind, idx, end, ok := scanAtomRef(text, i); ok {
				b.WriteString(r.expandAtom(kind, idx))
				i = end
				continue
			}
		}

		if isIdentStart(c) {
			name, end := scanBareIdent(text, i)
			// A bare identifier immediately preceded by `.` is an already-
			// qualified property name, not a free-standing reference.
			precededByDot := i > 0 && text[i-1] == '.'
			switch {
			case precededByDot:
				b.WriteString(name)
			case name == "this":
				b.WriteString(r.resolveThis(thisIsMemberAccess(text, end)))
			case reservedWord[name]:
				b.WriteString(name)
			default:
				b.WriteString(r.resolveIdent(name, isCallAt(text, end)))
			}
			i = end
			continue
		}

		b.WriteByte(c)
		i++
	}
	return b.String()
}

// expandAtom recurses into one bracket atom's stored text between its
// opening and closing bracket characters and puts those brackets back
// around the result (bracket-restoration +
// identifier-resolution only, per expandAndResolve's doc comment).
// atom.KindInlineObject is declared (pkg/atom, pkg/ast) for a `{label:
// value}` literal form but nothing in pkg/lexer/pkg/exprxform currently
// ever tags an atom with it, so that case never fires in practice; it
// falls through to the default passthrough, which is already correct for
// it if a future pass starts producing one.
func (r *renderer) expandAtom(kind atom.Kind, idx int) string {
	entry := r.sess.Atoms.MustGet(idx)
	text := entry.Text
	if kind == atom.KindBrace || kind == atom.KindParen || kind == atom.KindBracket {
		text = text[1 : len(text)-1]
	}
	inner := r.expandAndResolve(text)
	switch kind {
	case atom.KindBrace:
		return "{" + inner + "}"
	case atom.KindParen:
		return "(" + inner + ")"
	case atom.KindBracket:
		return "[" + inner + "]"
	default:
		return inner
	}
}

// renderInlineClass renders a Processing `new Base(){ ... }` anonymous
// subclass as `new (<constructor IIFE>)()`, reusing the same
// constructor-function and metadata rendering as a named class declaration
// (classdecl.go) — the only difference is that, having no enclosing
// statement list to attach `$base`/`$interfaces`/... assignments to, those
// assignments happen inside the same IIFE, right before it returns the
// constructor function it just built.
func (r *renderer) renderInlineClass(ic *ast.InlineClass) string {
	r.pushClassNamed(ic.SyntheticName, ic.Body)
	defer r.pop()

	var b strings.Builder
	b.WriteString("(function(){\n")
	b.WriteString(r.renderClassConstructorFn(ic.SyntheticName, ic.Body))
	b.WriteString("\n")
	b.WriteString(renderClassMetadataLines(ic.SyntheticName, ic.Body))
	b.WriteString("return ")
	b.WriteString(ic.SyntheticName)
	b.WriteString(";\n})()")
	return "new (" + b.String() + ")()"
}
