package render

import (
	"strings"
	"testing"

	"github.com/kent-wong/my-processing/internal/resolve"
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/classbody"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/lexer"
	"github.com/kent-wong/my-processing/pkg/metaweight"
	"github.com/kent-wong/my-processing/pkg/session"
)

// buildRoot runs every stage up to (but not including) rendering over src,
// mirroring pkg/translate.Translate's own pipeline, so these tests can
// exercise render.Program directly against a hand-assembled *ast.Root.
func buildRoot(t *testing.T, src string) (*ast.Root, *session.Session) {
	t.Helper()
	sess := session.New()

	elided := lexer.RunElisionStage(src, sess.Strings)
	stripped := lexer.StripGenerics(elided)
	topLevel, err := lexer.Atomize(stripped, sess.Atoms)
	if err != nil {
		t.Fatalf("Atomize: %v", err)
	}

	deps := classbody.Deps{Atoms: sess.Atoms, Session: sess}
	res := declare.Extract(topLevel, "", sess.Atoms)

	root := &ast.Root{}
	for idx := 0; idx < sess.Atoms.Len(); idx++ {
		if hdr, ok := res.Classes[idx]; ok {
			root.Statements = append(root.Statements, deps.BuildDecl(hdr, -1))
		}
		if mh, ok := res.Methods[idx]; ok {
			root.Statements = append(root.Statements, deps.BuildFunction(mh, -1))
		}
	}

	metaweight.Weigh(sess)
	return root, sess
}

func TestProgramWrapsInHostIIFE(t *testing.T) {
	root, sess := buildRoot(t, "class A {}")
	out := Program(root, sess, resolve.DefaultOptions())
	if !strings.Contains(out, "(function($p){") {
		t.Fatalf("expected host IIFE wrapper in:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "})();") {
		t.Fatalf("expected trailing })(); in:\n%s", out)
	}
}

func TestProgramOrdersClassesByWeight(t *testing.T) {
	root, sess := buildRoot(t, "class C extends B {} class B extends A {} class A {}")
	out := Program(root, sess, resolve.DefaultOptions())
	ai := strings.Index(out, "var A = ")
	bi := strings.Index(out, "var B = ")
	ci := strings.Index(out, "var C = ")
	if ai < 0 || bi < 0 || ci < 0 {
		t.Fatalf("expected all three classes rendered in:\n%s", out)
	}
	if !(ai < bi && bi < ci) {
		t.Fatalf("expected A before B before C, got A=%d B=%d C=%d", ai, bi, ci)
	}
}

func TestProgramStaticFieldLazyInit(t *testing.T) {
	root, sess := buildRoot(t, "class A { static int count = 0; }")
	out := Program(root, sess, resolve.DefaultOptions())
	if !strings.Contains(out, "if (!('count' in A)) { A.count = 0; }") {
		t.Fatalf("expected static field lazy-init guard in:\n%s", out)
	}
	if !strings.Contains(out, "$p.defineProperty(") {
		t.Fatalf("expected defineProperty forwarding in:\n%s", out)
	}
}

func TestProgramInstanceMethodRegistration(t *testing.T) {
	root, sess := buildRoot(t, "class A { void step() { x = 1; } }")
	out := Program(root, sess, resolve.DefaultOptions())
	if !strings.Contains(out, "$p.addMethod($this_1, 'step$0',") {
		t.Fatalf("expected instance method registration in:\n%s", out)
	}
}

func TestReinjectRestoresStringLiterals(t *testing.T) {
	sess := session.New()
	idx := sess.Strings.Add(`"hello"`)
	placeholder := atom.StringPlaceholder(idx)
	out := Reinject("var s = "+placeholder+";", sess)
	if !strings.Contains(out, `"hello"`) {
		t.Fatalf("expected restored string literal in %q", out)
	}
}

func TestReinjectUnescapesIdentifiers(t *testing.T) {
	sess := session.New()
	escaped := lexer.EscapeIdentifiers("$foo")
	out := Reinject(escaped, sess)
	if !strings.Contains(out, "$foo") {
		t.Fatalf("expected $foo restored, got %q (escaped was %q)", out, escaped)
	}
}
