package render

import (
	"strconv"

	"github.com/kent-wong/my-processing/internal/resolve"
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/session"
)

// frameKind tags one entry of the renderer's name-resolution context
// stack (spec.md §4.6: "maintains a name-resolution context stack").
type frameKind int

const (
	frameLocal frameKind = iota
	frameClass
)

// classFrame is the class-scoped half of the context stack: everything
// resolveIdent needs to classify a bare identifier against "the current
// class" (spec.md §4.6's field/inner-class/method resolution rules).
type classFrame struct {
	className    string
	selfID       string // "$this_<scopeDepth>"
	innerFuncs   map[string]bool
	fields       map[string]bool // name -> isStatic
	innerClasses map[string]bool
	methods      map[string]bool // name -> isStatic
}

type frame struct {
	kind   frameKind
	locals map[string]bool // frameLocal
	class  *classFrame     // frameClass
}

// renderer carries the per-Translate-call state the whole package's
// recursive walk shares: the session (atom/string tables, class
// registry), the resolver options, and the name-resolution context stack.
type renderer struct {
	sess        *session.Session
	opts        resolve.Options
	stack       []frame
	iterCounter int
}

func newRenderer(sess *session.Session, opts resolve.Options) *renderer {
	return &renderer{sess: sess, opts: opts}
}

func (r *renderer) pushLocals(names map[string]bool) {
	r.stack = append(r.stack, frame{kind: frameLocal, locals: names})
}

func (r *renderer) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// pushClass enters a class/interface body's scope: selfID is computed from
// scopeDepth (the count of enclosing class owners, spec.md §9's "Scope
// depth"), not from the classId, so sibling classes at the same nesting
// depth share the same selfId text — harmless, since each lives in its
// own function closure.
func (r *renderer) pushClass(body *ast.ClassBody) {
	r.pushClassNamed(body.Name, body)
}

// pushClassNamed is pushClass with an explicit class name, for an inline
// `new T(){...}` subclass (expr.go's renderInlineClass): its ClassBody is
// registered anonymously (Name == ""), so the synthetic name minted by
// pkg/exprxform must be supplied separately for static-member
// qualification (resolveIdent's `ClassName.field` form) to come out right.
func (r *renderer) pushClassNamed(name string, body *ast.ClassBody) {
	r.stack = append(r.stack, frame{kind: frameClass, class: r.buildClassFrame(body.ClassID, name, body.Fields, body.Methods, body.InnerClasses, body.Functions)})
}

func (r *renderer) pushInterfaceClass(ib *ast.InterfaceBody) {
	r.stack = append(r.stack, frame{kind: frameClass, class: r.buildClassFrame(ib.ClassID, ib.Name, ib.Fields, nil, ib.InnerClasses, nil)})
}

func (r *renderer) buildClassFrame(classID int, name string, fields []*ast.Field, methods []*ast.Method, inners []ast.Node, funcs []*ast.Function) *classFrame {
	cf := &classFrame{
		className:    name,
		selfID:       "$this_" + strconv.Itoa(scopeDepth(r.sess, classID)),
		innerFuncs:   map[string]bool{},
		fields:       map[string]bool{},
		innerClasses: map[string]bool{},
		methods:      map[string]bool{},
	}
	for _, f := range funcs {
		if f.Name != "" {
			cf.innerFuncs[f.Name] = true
		}
	}
	for _, f := range fields {
		for _, def := range f.Definitions {
			cf.fields[def.Name] = f.IsStatic
		}
	}
	for _, in := range inners {
		cf.innerClasses[innerName(in)] = true
	}
	for _, m := range methods {
		cf.methods[m.Name] = m.IsStatic
	}
	return cf
}

func innerName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.InnerClass:
		return v.Name
	case *ast.InnerInterface:
		return v.Name
	}
	return ""
}

func innerClassID(n ast.Node) int {
	switch v := n.(type) {
	case *ast.InnerClass:
		return v.Body.ClassID
	case *ast.InnerInterface:
		return v.Body.ClassID
	}
	return -1
}

// scopeDepth counts classID's own nesting level: 1 for a top-level class
// body, incrementing by one per enclosing class owner (spec.md §8 scenario
// 1: a plain top-level class's self-pointer is `$this_1`, not `$this_0`).
func scopeDepth(sess *session.Session, classID int) int {
	depth := 1
	rec, ok := sess.ClassByID(classID)
	if !ok {
		return depth
	}
	for rec.ScopeID >= 0 {
		parent, ok := sess.ClassByID(rec.ScopeID)
		if !ok {
			break
		}
		depth++
		rec = parent
	}
	return depth
}

// currentClassFrame returns the innermost classFrame on the stack, or nil
// at the top level (free statements outside any class).
func (r *renderer) currentClassFrame() *classFrame {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].kind == frameClass {
			return r.stack[i].class
		}
	}
	return nil
}

// resolveThis implements spec.md §4.6/§9's `this` rule: a call or a
// standalone value resolves to `$this_K.$self` (methods live there);
// `this.field` (member access, not itself a call) resolves to the bare
// `$this_K` so the caller can append `.field` untouched.
func (r *renderer) resolveThis(isMemberAccessNonCall bool) string {
	cf := r.currentClassFrame()
	if cf == nil {
		return "this"
	}
	if isMemberAccessNonCall {
		return cf.selfID
	}
	return cf.selfID + ".$self"
}

// resolveIdent classifies one bare (non-"this", non-dot-qualified)
// identifier per spec.md §4.6's shadowing order: function/catch/block
// locals (frameLocal) shadow everything; failing that, each enclosing
// class frame's inner-function, field, inner-class and method sets are
// tried in that order, innermost frame first; failing all of those, a
// host-runtime global gets
// the `$p.` prefix; otherwise the name is passed through unchanged
// (spec.md §7's tolerate-the-unrecognized contract).
func (r *renderer) resolveIdent(name string, isCall bool) string {
	for i := len(r.stack) - 1; i >= 0; i-- {
		f := r.stack[i]
		if f.kind == frameLocal {
			if f.locals[name] {
				return name
			}
			continue
		}

		cf := f.class
		if cf.innerFuncs[name] {
			return name
		}
		if isStatic, ok := cf.fields[name]; ok {
			if isStatic {
				return cf.className + "." + name
			}
			return cf.selfID + "." + name
		}
		if cf.innerClasses[name] {
			return cf.selfID + "." + name
		}
		if isStatic, ok := cf.methods[name]; ok {
			if isStatic {
				return cf.className + "." + name
			}
			return cf.selfID + ".$self." + name
		}
	}

	if r.opts.Has(name) {
		return "$p." + name
	}
	return name
}
