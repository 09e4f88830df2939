package classbody

import (
	"sort"
	"strconv"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/declare"
)

// BuildDecl assembles one class or interface declaration discovered by the
// declaration extractor (a *declare.ClassHeader) into its tagged AST form,
// registering it into the session's class registry under scopeID (the
// enclosing class's id, or -1 at the top level). This is the single entry
// point pkg/translate calls for every top-level declaration, and the one
// this package recurses into for inner classes and `new T(){...}` inline
// subclasses.
func (d Deps) BuildDecl(hdr *declare.ClassHeader, scopeID int) ast.Node {
	rec := d.Session.Register(hdr.Name, scopeID, hdr.IsInterface)
	rec.BaseName = firstOrEmpty(hdr.BaseNames)
	rec.InterfaceNames = hdr.InterfaceNames

	if hdr.IsInterface {
		body := d.buildInterfaceBody(rec.ID, hdr, scopeID)
		return &ast.Interface{ClassID: rec.ID, Name: hdr.Name, Body: body}
	}
	body := d.buildClassBody(rec.ID, hdr.Name, rec.BaseName, hdr.InterfaceNames, hdr.BodyAtomIdx, scopeID)
	return &ast.Class{ClassID: rec.ID, Name: hdr.Name, Body: body}
}

// buildClassBody runs the extractor over one `{...}` class-body span and
// assembles every member it finds, per spec.md §4.6.
func (d Deps) buildClassBody(classID int, name, baseName string, interfaceNames []string, bodyAtomIdx, scopeID int) *ast.ClassBody {
	inner := braceInner(d.Atoms.MustGet(bodyAtomIdx))
	res := declare.Extract(inner, name, d.Atoms)

	body := &ast.ClassBody{
		ClassID:        classID,
		Name:           name,
		BaseName:       baseName,
		InterfaceNames: interfaceNames,
	}

	for _, idx := range sortedClassKeys(res.Classes) {
		chdr := res.Classes[idx]
		isStatic := hasModifierWord(d.Atoms.MustGet(idx).Text, "static")
		node := d.BuildDecl(chdr, classID)
		switch n := node.(type) {
		case *ast.Class:
			body.InnerClasses = append(body.InnerClasses, &ast.InnerClass{Name: n.Name, Body: n.Body, IsStatic: isStatic})
		case *ast.Interface:
			body.InnerClasses = append(body.InnerClasses, &ast.InnerInterface{Name: n.Name, Body: n.Body, IsStatic: isStatic})
		}
	}

	methodArity := map[string]int{}
	for _, idx := range sortedMethodKeys(res.Methods) {
		mh := res.Methods[idx]
		entry := d.Atoms.MustGet(idx)
		switch entry.Kind {
		case atom.KindConstructor:
			body.Constructors = append(body.Constructors, d.buildConstructor(mh, classID))
		case atom.KindFunction:
			body.Functions = append(body.Functions, d.buildFunction(mh, classID))
		case atom.KindMethod:
			if mh.IsAbstract {
				continue // no body to emit; spec.md §4.6 covers concrete bodies only
			}
			isStatic := hasModifierWord(entry.Text, "static")
			body.Methods = append(body.Methods, d.buildMethod(mh, classID, isStatic, methodArity))
		}
	}

	d.appendFieldsAndMisc(&body.Fields, &body.TrailingMisc, res.Text, classID)

	return body
}

// buildInterfaceBody mirrors buildClassBody but interfaces contribute no
// implementation: only declared method names, constant fields and nested
// types (spec.md §3's InterfaceBody row).
func (d Deps) buildInterfaceBody(classID int, hdr *declare.ClassHeader, scopeID int) *ast.InterfaceBody {
	inner := braceInner(d.Atoms.MustGet(hdr.BodyAtomIdx))
	res := declare.Extract(inner, hdr.Name, d.Atoms)

	ib := &ast.InterfaceBody{
		ClassID:   classID,
		Name:      hdr.Name,
		BaseNames: append(append([]string{}, hdr.BaseNames...), hdr.InterfaceNames...),
	}

	for _, idx := range sortedClassKeys(res.Classes) {
		chdr := res.Classes[idx]
		isStatic := hasModifierWord(d.Atoms.MustGet(idx).Text, "static")
		node := d.BuildDecl(chdr, classID)
		switch n := node.(type) {
		case *ast.Class:
			ib.InnerClasses = append(ib.InnerClasses, &ast.InnerClass{Name: n.Name, Body: n.Body, IsStatic: isStatic})
		case *ast.Interface:
			ib.InnerClasses = append(ib.InnerClasses, &ast.InnerInterface{Name: n.Name, Body: n.Body, IsStatic: isStatic})
		}
	}

	for _, idx := range sortedMethodKeys(res.Methods) {
		mh := res.Methods[idx]
		ib.MethodNames = append(ib.MethodNames, mh.Name)
	}

	var misc []*ast.Statement
	d.appendFieldsAndMisc(&ib.Fields, &misc, res.Text, classID)
	// An interface body's stray statements have no home to emit them in;
	// any that show up are dropped, matching the extractor's "best effort,
	// tolerate unrecognized constructs" contract (spec.md §7).

	return ib
}

// buildInlineClassBody builds the synthetic subclass body for a `new T()
// { ... }` expression (spec.md §4.5/§4.6): same shape as an ordinary class
// body, anonymous, scoped under the class that lexically contains the
// `new` expression.
func (d Deps) buildInlineClassBody(baseName string, bodyAtomIdx, scopeID int) *ast.ClassBody {
	rec := d.Session.Register("", scopeID, false)
	rec.BaseName = baseName
	return d.buildClassBody(rec.ID, "", baseName, nil, bodyAtomIdx, scopeID)
}

func sortedClassKeys(m map[int]*declare.ClassHeader) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedMethodKeys(m map[int]*declare.MethodHeader) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func overloadSuffix(name string, arity int, seen map[string]int) string {
	key := name + "$" + strconv.Itoa(arity)
	n := seen[key]
	seen[key] = n + 1
	if n == 0 {
		return key
	}
	return key + "_" + strconv.Itoa(n)
}
