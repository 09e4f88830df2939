package stmtxform

import (
	"testing"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/exprxform"
	"github.com/kent-wong/my-processing/pkg/lexer"
)

func atomizeBody(t *testing.T, src string) (int, Deps) {
	t.Helper()
	tab := atom.New()
	body, err := lexer.Atomize(src, tab)
	if err != nil {
		t.Fatalf("Atomize(%q): %v", src, err)
	}
	kind, idx, _, ok := func() (atom.Kind, int, int, bool) {
		return scanAtomRef(body, 0)
	}()
	if !ok || kind != atom.KindBrace {
		t.Fatalf("expected whole body to be one brace atom, got %q", body)
	}
	exDeps := exprxform.Deps{Atoms: tab, NextSyntheticID: func() int { return 1 }}
	d := Deps{
		Atoms:         tab,
		TransformExpr: func(text string) *ast.Expression { return exprxform.Transform(text, exDeps) },
	}
	return idx, d
}

func TestForClassicHead(t *testing.T) {
	idx, d := atomizeBody(t, "{ for (var i = 0; i < 10; i = i + 1) { println(i); } }")
	block := TransformBlock(idx, d)
	if len(block.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Statements))
	}
	forStmt, ok := block.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", block.Statements[0])
	}
	inner, ok := forStmt.Argument.(*ast.StatementsBlock)
	if !ok || len(inner.Statements) != 2 {
		t.Fatalf("expected head+body pair, got %#v", forStmt.Argument)
	}
	if _, ok := inner.Statements[0].(*ast.ForExpression); !ok {
		t.Fatalf("expected ForExpression head, got %T", inner.Statements[0])
	}
}

func TestForEachHead(t *testing.T) {
	idx, d := atomizeBody(t, "{ for (int i : list) { println(i); } }")
	block := TransformBlock(idx, d)
	forStmt := block.Statements[0].(*ast.ForStatement)
	inner := forStmt.Argument.(*ast.StatementsBlock)
	if _, ok := inner.Statements[0].(*ast.ForEachExpression); !ok {
		t.Fatalf("expected ForEachExpression head, got %T", inner.Statements[0])
	}
}

func TestIfElseAndReturn(t *testing.T) {
	idx, d := atomizeBody(t, "{ if (x > 0) { return x; } return 0; }")
	block := TransformBlock(idx, d)
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %#v", len(block.Statements), block.Statements)
	}
	if _, ok := block.Statements[0].(*ast.PrefixStatement); !ok {
		t.Fatalf("expected if PrefixStatement, got %T", block.Statements[0])
	}
}

func TestVarLocalNames(t *testing.T) {
	idx, d := atomizeBody(t, "{ var a = 1, b = 2; }")
	block := TransformBlock(idx, d)
	if !block.LocalNames["a"] || !block.LocalNames["b"] {
		t.Fatalf("expected a and b in LocalNames, got %#v", block.LocalNames)
	}
}

func TestTryCatchFinally(t *testing.T) {
	idx, d := atomizeBody(t, "{ try { risky(); } catch (e) { handle(e); } finally { cleanup(); } }")
	block := TransformBlock(idx, d)
	if len(block.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Statements))
	}
	group, ok := block.Statements[0].(*ast.StatementsBlock)
	if !ok || len(group.Statements) != 3 {
		t.Fatalf("expected try/catch/finally trio, got %#v", block.Statements[0])
	}
	if _, ok := group.Statements[1].(*ast.CatchStatement); !ok {
		t.Fatalf("expected CatchStatement, got %T", group.Statements[1])
	}
}
