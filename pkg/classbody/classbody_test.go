package classbody

import (
	"testing"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/lexer"
	"github.com/kent-wong/my-processing/pkg/session"
)

func buildOne(t *testing.T, src string) (*session.Session, *ast.Class) {
	t.Helper()
	sess := session.New()
	body, err := lexer.Atomize(src, sess.Atoms)
	if err != nil {
		t.Fatalf("Atomize: %v", err)
	}
	res := declare.Extract(body, "", sess.Atoms)
	if len(res.Classes) != 1 {
		t.Fatalf("expected exactly one top-level class header, got %d (%q)", len(res.Classes), body)
	}
	var hdr *declare.ClassHeader
	for _, h := range res.Classes {
		hdr = h
	}
	d := Deps{Atoms: sess.Atoms, Session: sess}
	node := d.BuildDecl(hdr, -1)
	cls, ok := node.(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", node)
	}
	return sess, cls
}

func TestClassBodyFieldsAndMethods(t *testing.T) {
	src := `class Blob {
  int x = 0, y;
  static int count;
  void step() { x = x + 1; }
  int add(int a, int b) { return a + b; }
  int add(int a, int b, int c) { return a + b + c; }
}`
	_, cls := buildOne(t, src)
	if len(cls.Body.Fields) != 2 {
		t.Fatalf("expected 2 field groups, got %d: %#v", len(cls.Body.Fields), cls.Body.Fields)
	}
	if len(cls.Body.Fields[0].Definitions) != 2 {
		t.Fatalf("expected x and y in first field group, got %#v", cls.Body.Fields[0].Definitions)
	}
	if !cls.Body.Fields[1].IsStatic {
		t.Fatalf("expected count field to be static")
	}
	if len(cls.Body.Methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(cls.Body.Methods))
	}
	ids := map[string]bool{}
	for _, m := range cls.Body.Methods {
		ids[m.MethodID] = true
	}
	if !ids["step$0"] || !ids["add$2"] || !ids["add$3"] {
		t.Fatalf("unexpected method ids: %#v", ids)
	}
}

func TestOverloadSuffix(t *testing.T) {
	seen := map[string]int{}
	first := overloadSuffix("add", 2, seen)
	second := overloadSuffix("add", 2, seen)
	third := overloadSuffix("add", 3, seen)
	if first != "add$2" {
		t.Fatalf("got %q", first)
	}
	if second != "add$2_1" {
		t.Fatalf("got %q", second)
	}
	if third != "add$3" {
		t.Fatalf("got %q", third)
	}
}

func TestConstructorNaming(t *testing.T) {
	src := `class Point {
  int x;
  int y;
  Point(int x, int y) { this.x = x; this.y = y; }
}`
	_, cls := buildOne(t, src)
	if len(cls.Body.Constructors) != 1 {
		t.Fatalf("expected 1 constructor, got %d", len(cls.Body.Constructors))
	}
	c := cls.Body.Constructors[0]
	if c.ConstrName != "$constr_2" {
		t.Fatalf("got %q", c.ConstrName)
	}
	if len(c.Params.List) != 2 {
		t.Fatalf("expected 2 params, got %d", len(c.Params.List))
	}
	if c.HasExplicitChain {
		t.Fatalf("expected no explicit chain call")
	}
}

func TestConstructorExplicitChain(t *testing.T) {
	src := `class Sub {
  Sub() { super(); x = 1; }
}`
	_, cls := buildOne(t, src)
	c := cls.Body.Constructors[0]
	if !c.HasExplicitChain {
		t.Fatalf("expected explicit chain call to be detected")
	}
}

func TestClassRegistersInSession(t *testing.T) {
	sess, _ := buildOne(t, `class Empty { int z; }`)
	if len(sess.Classes()) != 1 {
		t.Fatalf("expected one registered class, got %d", len(sess.Classes()))
	}
	if sess.Classes()[0].Name != "Empty" {
		t.Fatalf("got name %q", sess.Classes()[0].Name)
	}
}

func TestInnerClass(t *testing.T) {
	src := `class Outer {
  static class Inner { int v; }
  int x;
}`
	_, cls := buildOne(t, src)
	if len(cls.Body.InnerClasses) != 1 {
		t.Fatalf("expected 1 inner class, got %d", len(cls.Body.InnerClasses))
	}
	inner, ok := cls.Body.InnerClasses[0].(*ast.InnerClass)
	if !ok {
		t.Fatalf("expected *ast.InnerClass, got %T", cls.Body.InnerClasses[0])
	}
	if inner.Name != "Inner" || !inner.IsStatic {
		t.Fatalf("got %#v", inner)
	}
}
