package exprxform

import (
	"strings"
	"testing"

	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/lexer"
)

func atomizeExpr(t *testing.T, src string) (string, Deps) {
	t.Helper()
	tab := atom.New()
	body, err := lexer.Atomize(src, tab)
	if err != nil {
		t.Fatalf("Atomize(%q): %v", src, err)
	}
	return body, Deps{Atoms: tab, NextSyntheticID: func() int { return 1 }}
}

func TestColorLiteral(t *testing.T) {
	body, d := atomizeExpr(t, "color c = #FF8040;")
	out := Transform(body, d)
	if !strings.Contains(out.Text, "0xFFFF8040") {
		t.Fatalf("expected 0xFFFF8040 in %q", out.Text)
	}
}

func TestIntCast(t *testing.T) {
	body, d := atomizeExpr(t, "(int)(x+1)")
	out := Transform(body, d)
	if !strings.Contains(out.Text, "__int_cast(") {
		t.Fatalf("expected __int_cast in %q", out.Text)
	}
}

func TestReplaceRename(t *testing.T) {
	body, d := atomizeExpr(t, `s.replace("a","b")`)
	out := Transform(body, d)
	if !strings.Contains(out.Text, "__replace(s,") {
		t.Fatalf("expected __replace(s,...) in %q", out.Text)
	}
}

func TestInstanceofRewrite(t *testing.T) {
	body, d := atomizeExpr(t, "x instanceof Foo")
	out := Transform(body, d)
	if !strings.Contains(out.Text, "__instanceof(x, Foo)") {
		t.Fatalf("expected __instanceof(x, Foo) in %q", out.Text)
	}
}

func TestArrayLength(t *testing.T) {
	if got := rewriteArrayLength("a.length()"); got != "a.length" {
		t.Fatalf("got %q", got)
	}
}

func TestSuperThisCalls(t *testing.T) {
	body, d := atomizeExpr(t, "super()")
	out := Transform(body, d)
	if !strings.Contains(out.Text, `$superCstr"B 1"`) {
		t.Fatalf(`expected $superCstr"B 1" in %q`, out.Text)
	}

	body2, d2 := atomizeExpr(t, "super.go()")
	out2 := Transform(body2, d2)
	if !strings.HasPrefix(out2.Text, "$super.") {
		t.Fatalf("expected $super. prefix in %q", out2.Text)
	}

	body3, d3 := atomizeExpr(t, "this(1)")
	out3 := Transform(body3, d3)
	if !strings.Contains(out3.Text, `$constr"B 1"`) {
		t.Fatalf(`expected $constr"B 1" in %q`, out3.Text)
	}
}

func TestLeadingZeroNumerics(t *testing.T) {
	if got := rewriteLeadingZeroNumerics("0010f"); got != "10f" {
		t.Fatalf("got %q, want 10f (suffix stripped by a later pass)", got)
	}
	if got := rewriteLeadingZeroNumerics("000.43"); got != "0.43" {
		t.Fatalf("got %q", got)
	}
	if got := rewriteLeadingZeroNumerics("0010"); got != "0010" {
		t.Fatalf("got %q, want unchanged 0010", got)
	}
}

func TestFloatSuffixStripped(t *testing.T) {
	if got := rewriteFloatSuffix("3.0f"); got != "3.0" {
		t.Fatalf("got %q", got)
	}
}

func TestPrimitiveParseCalls(t *testing.T) {
	body, d := atomizeExpr(t, "boolean(x)")
	out := Transform(body, d)
	if !strings.Contains(out.Text, `parseBoolean"B 1"`) {
		t.Fatalf(`expected parseBoolean"B 1" in %q`, out.Text)
	}
}

func TestBareEventNameRename(t *testing.T) {
	if got := rewriteBareEventNames("if (frameRate > 30)"); !strings.Contains(got, "__frameRate") {
		t.Fatalf("got %q", got)
	}
}

func TestPixelsProxyIndexedRead(t *testing.T) {
	body, d := atomizeExpr(t, "pixels[i]")
	out := Transform(body, d)
	if !strings.Contains(out.Text, "pixels.getPixel(i)") {
		t.Fatalf("got %q", out.Text)
	}
}

func TestPixelsProxyBareRead(t *testing.T) {
	body, d := atomizeExpr(t, "pixels")
	out := Transform(body, d)
	if out.Text != "pixels.toArray()" {
		t.Fatalf("got %q", out.Text)
	}
}

func TestArrayLiteralCreationDropsNewPrefix(t *testing.T) {
	body, d := atomizeExpr(t, "new int[] {1,2,3}")
	out := Transform(body, d)
	if strings.Contains(out.Text, "new") {
		t.Fatalf("expected `new int[]` prefix dropped, got %q", out.Text)
	}
	if kind, _, ok := atom.ParseToken(strings.TrimSpace(out.Text)); !ok || kind != atom.KindBrace {
		t.Fatalf("expected brace initializer preserved, got %q", out.Text)
	}
}

func TestMultiDimArrayCreation(t *testing.T) {
	body, d := atomizeExpr(t, "new int[n][m]")
	out := Transform(body, d)
	if !strings.Contains(out.Text, "$p.createJavaArray('int', [n, m])") {
		t.Fatalf("got %q", out.Text)
	}
}
