// Package classbody implements spec.md §4.6's class/interface body
// assembler: given a class header and the atom index of its `{...}` body,
// it runs the declaration extractor over the body text, builds every
// field/method/constructor/function/inner-class it finds into the tagged
// AST, and registers the class into the session's class registry for the
// later metadata/weighter and renderer stages.
package classbody

import (
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/exprxform"
	"github.com/kent-wong/my-processing/pkg/session"
	"github.com/kent-wong/my-processing/pkg/stmtxform"
)

// Deps bundles the session-scoped collaborators every build function in
// this package needs. It is deliberately thin: the atom table every span
// was recorded against, and the session registry that §4.7's weighter
// later walks.
type Deps struct {
	Atoms   *atom.Table
	Session *session.Session
}

// exprDeps wires exprxform.Transform's collaborators for an expression
// lexically owned by the class with id scopeID: an inline-class builder
// that recurses back into this package, and a synthetic-id source shared
// with the session's class-id sequence (spec.md §4.5's `T$classID`).
func (d Deps) exprDeps(scopeID int) exprxform.Deps {
	return exprxform.Deps{
		Atoms: d.Atoms,
		BuildInlineClass: func(baseName string, bodyAtomIdx int) *ast.ClassBody {
			return d.buildInlineClassBody(baseName, bodyAtomIdx, scopeID)
		},
		NextSyntheticID: func() int { return d.Session.NextClassID() },
	}
}

// stmtDeps wires stmtxform.TransformBlock's single collaborator,
// delegating every expression it meets back to exprxform.Transform scoped
// to the same owning class.
func (d Deps) stmtDeps(scopeID int) stmtxform.Deps {
	ed := d.exprDeps(scopeID)
	return stmtxform.Deps{
		Atoms:         d.Atoms,
		TransformExpr: func(text string) *ast.Expression { return exprxform.Transform(text, ed) },
	}
}

// ExprDeps exposes exprDeps to callers outside this package. pkg/translate
// needs it to transform the free-standing expressions left at the top
// level once every top-level class/interface has been extracted (scopeID
// -1: no enclosing class).
func (d Deps) ExprDeps(scopeID int) exprxform.Deps { return d.exprDeps(scopeID) }

// StmtDeps exposes stmtDeps for the same reason.
func (d Deps) StmtDeps(scopeID int) stmtxform.Deps { return d.stmtDeps(scopeID) }

// BuildFunction exposes buildFunction so pkg/translate can assemble
// top-level `function` declarations (Processing's bare `void setup(){...}`
// sketch callbacks, which the extractor recognizes as method headers) the
// same way a class body does.
func (d Deps) BuildFunction(mh *declare.MethodHeader, scopeID int) *ast.Function {
	return d.buildFunction(mh, scopeID)
}

func firstOrEmpty(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func braceInner(entry atom.Entry) string {
	return entry.Text[1 : len(entry.Text)-1]
}
