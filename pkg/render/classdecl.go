package render

import (
	"strconv"
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/metaweight"
)

// renderClass renders one top-level named class declaration, following
// spec.md §4.6's ten-step class-body IIFE contract. Inner classes go
// through renderInnerClassMember, which shares renderClassConstructorFn.
func (r *renderer) renderClass(c *ast.Class) string {
	r.pushClass(c.Body)
	defer r.pop()

	var b strings.Builder
	b.WriteString("var ")
	b.WriteString(c.Name)
	b.WriteString(" = (function(){\n")
	b.WriteString(r.renderClassConstructorFn(c.Name, c.Body))
	b.WriteString("\nreturn ")
	b.WriteString(c.Name)
	b.WriteString(";\n})();\n")
	b.WriteString(renderClassMetadataLines(c.Name, c.Body))
	return b.String()
}

// renderInterface renders an interface declaration: interfaces contribute
// a name contract and constant fields but no instance machinery, so there
// is no constructor IIFE, no $this_K, no $super.
func (r *renderer) renderInterface(in *ast.Interface) string {
	r.pushInterfaceClass(in.Body)
	defer r.pop()

	var b strings.Builder
	b.WriteString("var ")
	b.WriteString(in.Name)
	b.WriteString(" = {};\n")
	for _, f := range in.Body.Fields {
		for _, def := range f.Definitions {
			b.WriteString(in.Name)
			b.WriteString(".")
			b.WriteString(def.Name)
			b.WriteString(" = ")
			b.WriteString(r.renderVarDefValue(def))
			b.WriteString(";\n")
		}
	}
	b.WriteString(in.Name + ".$base = null;\n")
	b.WriteString(in.Name + ".$interfaces = " + stringSliceLiteral(in.Body.BaseNames) + ";\n")
	b.WriteString(in.Name + ".$methods = " + stringSliceLiteral(in.Body.MethodNames) + ";\n")
	b.WriteString(in.Name + ".$isInterface = true;\n")
	return b.String()
}

// renderClassConstructorFn renders the `function Name(){ ...steps 1-9... }`
// constructor shared by a top-level class declaration and an inline
// anonymous subclass (expr.go's renderInlineClass) — only the wrapping
// differs between the two call sites.
func (r *renderer) renderClassConstructorFn(name string, body *ast.ClassBody) string {
	cf := r.currentClassFrame()
	selfID := cf.selfID

	var b strings.Builder
	b.WriteString("function " + name + "(){\n")
	b.WriteString("var " + selfID + " = this;\n")

	if body.BaseName != "" {
		b.WriteString("var $super = { $upcast: " + selfID + " };\n")
		b.WriteString("function $superCstr(){ " + body.BaseName + ".apply($super, arguments); if (!('$self' in $super)) { $p.extendClassChain($super); } }\n")
	} else {
		b.WriteString("var $superCstr = $p.extendClassChain(" + selfID + ");\n")
	}

	for _, fn := range body.Functions {
		b.WriteString(r.renderInnerFunction(fn))
		b.WriteString("\n")
	}

	for _, id := range metaweight.OrderDescending(r.sess, innerClassIDs(body.InnerClasses)) {
		n := findInnerByID(body.InnerClasses, id)
		if n != nil {
			b.WriteString(r.renderInnerClassMember(name, selfID, n))
		}
	}

	for _, f := range body.Fields {
		b.WriteString(r.renderFieldMember(name, selfID, f))
	}

	for _, m := range body.Methods {
		b.WriteString(r.renderMethodMember(name, selfID, m))
	}

	for _, st := range body.TrailingMisc {
		b.WriteString(r.renderNode(st))
		b.WriteString("\n")
	}

	for _, c := range body.Constructors {
		b.WriteString(r.renderConstructorFn(selfID, c))
		b.WriteString("\n")
	}
	b.WriteString(r.renderConstructorDispatcher(selfID, body.Constructors))
	b.WriteString("$constr.apply(null, arguments);\n")
	b.WriteString("}")
	return b.String()
}

func (r *renderer) renderInnerFunction(fn *ast.Function) string {
	r.pushLocals(paramNames(fn.Params))
	defer r.pop()
	return "function " + fn.Name + "(" + r.renderParams(fn.Params) + ") {\n" + r.renderBlockBody(fn.Body) + "\n}"
}

func (r *renderer) renderInnerClassMember(outerName, selfID string, n ast.Node) string {
	name := innerName(n)
	isStatic := false
	var inner *ast.ClassBody
	switch v := n.(type) {
	case *ast.InnerClass:
		isStatic, inner = v.IsStatic, v.Body
	case *ast.InnerInterface:
		isStatic = v.IsStatic
	}

	var b strings.Builder
	if inner != nil {
		r.pushClass(inner)
		ctor := "(function(){\n" + r.renderClassConstructorFn(name, inner) + "\nreturn " + name + ";\n})()"
		r.pop()
		b.WriteString("var " + name + " = " + ctor + ";\n")
		b.WriteString(renderClassMetadataLines(name, inner))
	}
	if isStatic {
		b.WriteString(outerName + "." + name + " = " + name + ";\n")
	}
	b.WriteString(selfID + "." + name + " = " + name + ";\n")
	return b.String()
}

func (r *renderer) renderFieldMember(className, selfID string, f *ast.Field) string {
	var b strings.Builder
	for _, def := range f.Definitions {
		val := r.renderVarDefValue(def)
		if f.IsStatic {
			b.WriteString("if (!('" + def.Name + "' in " + className + ")) { " + className + "." + def.Name + " = " + val + "; }\n")
			b.WriteString("$p.defineProperty(" + selfID + ", '" + def.Name + "', function(){ return " + className + "." + def.Name + "; }, function(v){ " + className + "." + def.Name + " = v; });\n")
		} else {
			b.WriteString(selfID + "." + def.Name + " = " + val + ";\n")
		}
	}
	return b.String()
}

func (r *renderer) renderVarDefValue(def *ast.VarDefinition) string {
	if def.Value != nil {
		return r.renderExpr(def.Value)
	}
	return "undefined"
}

func (r *renderer) renderMethodMember(className, selfID string, m *ast.Method) string {
	r.pushLocals(paramNames(m.Params))
	fn := "function(" + r.renderParams(m.Params) + ") {\n" + r.renderBlockBody(m.Body) + "\n}"
	r.pop()
	var b strings.Builder
	if m.IsStatic {
		b.WriteString("$p.addMethod(" + className + ", '" + m.MethodID + "', " + fn + ");\n")
		b.WriteString("$p.addMethod(" + selfID + ", '" + m.MethodID + "', " + className + "." + m.MethodID + ");\n")
	} else {
		b.WriteString("$p.addMethod(" + selfID + ", '" + m.MethodID + "', " + fn + ");\n")
	}
	return b.String()
}

func (r *renderer) renderConstructorFn(selfID string, c *ast.Constructor) string {
	r.pushLocals(paramNames(c.Params))
	defer r.pop()
	body := r.renderBlockBody(c.Body)
	if !c.HasExplicitChain {
		body = "$superCstr();\n" + body
	}
	return "function " + c.ConstrName + "(" + r.renderParams(c.Params) + ") {\n" + body + "\n}"
}

func (r *renderer) renderConstructorDispatcher(selfID string, ctors []*ast.Constructor) string {
	if len(ctors) == 0 {
		return "function $constr(){ $superCstr.apply(" + selfID + ", arguments); }\n"
	}
	ordered := append([]*ast.Constructor(nil), ctors...)
	sortConstructorsByArityDesc(ordered)

	var b strings.Builder
	b.WriteString("function $constr(){\n")
	for i, c := range ordered {
		n := len(c.Params.List)
		op := "==="
		if c.Params.VarargParam != nil {
			op = ">="
		}
		kw := "if"
		if i > 0 {
			kw = "else if"
		}
		b.WriteString(kw + " (arguments.length " + op + " " + strconv.Itoa(n) + ") { " + c.ConstrName + ".apply(" + selfID + ", arguments); }\n")
	}
	b.WriteString("else { $superCstr.apply(" + selfID + ", arguments); }\n")
	b.WriteString("}\n")
	return b.String()
}

func sortConstructorsByArityDesc(cs []*ast.Constructor) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && len(cs[j].Params.List) > len(cs[j-1].Params.List); j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
}

// renderClassMetadataLines renders spec.md §4.6 step 10's four metadata
// assignments for one class body, attached to varName (the class's own
// name for a top-level declaration, or the synthetic name for an inline
// subclass / inner class).
func renderClassMetadataLines(varName string, body *ast.ClassBody) string {
	base := "null"
	if body.BaseName != "" {
		base = "'" + body.BaseName + "'"
	}
	var b strings.Builder
	b.WriteString(varName + ".$base = " + base + ";\n")
	b.WriteString(varName + ".$interfaces = " + stringSliceLiteral(body.InterfaceNames) + ";\n")
	b.WriteString(varName + ".$methods = " + stringSliceLiteral(methodIDs(body.Methods)) + ";\n")
	b.WriteString(varName + ".$isInterface = false;\n")
	return b.String()
}

func methodIDs(ms []*ast.Method) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.MethodID
	}
	return out
}

func stringSliceLiteral(ss []string) string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range ss {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + s + "'")
	}
	b.WriteString("]")
	return b.String()
}

func innerClassIDs(nodes []ast.Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, innerClassID(n))
	}
	return out
}

func findInnerByID(nodes []ast.Node, id int) ast.Node {
	for _, n := range nodes {
		if innerClassID(n) == id {
			return n
		}
	}
	return nil
}

func paramNames(p *ast.Params) map[string]bool {
	names := map[string]bool{}
	if p == nil {
		return names
	}
	for _, pa := range p.List {
		names[pa.Name] = true
	}
	if p.VarargParam != nil {
		names[p.VarargParam.Name] = true
	}
	return names
}

func (r *renderer) renderParams(p *ast.Params) string {
	if p == nil {
		return ""
	}
	names := make([]string, 0, len(p.List)+1)
	for _, pa := range p.List {
		names = append(names, pa.Name)
	}
	if p.VarargParam != nil {
		names = append(names, p.VarargParam.Name)
	}
	return strings.Join(names, ", ")
}

// renderBlockBody renders the block's own statements; the caller has
// already pushed the parameter names onto the stack. Used by methods,
// constructors and functions alike.
func (r *renderer) renderBlockBody(block *ast.StatementsBlock) string {
	if block == nil {
		return ""
	}
	return r.renderNode(block)
}
