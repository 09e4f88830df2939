package render

import (
	"strconv"
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
)

// renderNode is the exhaustive type switch over every pkg/ast variant
// (spec.md §3's statement-level nodes plus the handful of declaration
// nodes that can, in principle, appear wherever a Node slot is generic).
// *ast.Class/*ast.Interface are handled here defensively for switch
// completeness: in practice render.Program always pulls top-level
// declarations out and renders them via renderClass/renderInterface
// before this switch ever sees the rest of Root.Statements.
func (r *renderer) renderNode(n ast.Node) string {
	switch v := n.(type) {
	case nil:
		return ""

	case *ast.Statement:
		return r.renderExpr(v.Expr) + ";"

	case *ast.Var:
		return r.renderVar(v)

	case *ast.StatementsBlock:
		// Reached directly only for pkg/stmtxform's try/catch/finally
		// sequence (parseTry returns a bare StatementsBlock whose children
		// are already fully self-describing statements) or, defensively,
		// any other bare sequence — the head+body pairing shapes are
		// always unwrapped by their owning PrefixStatement/ForStatement
		// case before reaching here, never rendered as a plain block.
		return r.renderStatementsBlock(v)

	case *ast.ForStatement:
		return r.renderForStatement(v)

	case *ast.CatchStatement:
		if name := lastIdentIn(v.Prefix); name != "" {
			r.pushLocals(map[string]bool{name: true})
			defer r.pop()
		}
		return "catch (" + v.Prefix + ") " + r.renderBody(v.Argument)

	case *ast.PrefixStatement:
		return r.renderPrefixStatement(v)

	case *ast.SwitchCase:
		if v.Argument == nil {
			return v.Prefix + ":"
		}
		st := v.Argument.(*ast.Statement)
		return v.Prefix + " " + r.renderExpr(st.Expr) + ":"

	case *ast.Label:
		return v.Prefix + " " + r.renderNode(v.Argument)

	case *ast.ForExpression:
		return r.renderForExpression(v)

	case *ast.ForInExpression:
		return "(" + r.renderNode(v.InitStatement) + " in " + r.renderExpr(v.Container) + ")"

	case *ast.ForEachExpression:
		// Only reached defensively (switch completeness): the real
		// lowering happens in renderForStatement, which needs to see the
		// whole [head, body] pairing at once to wrap it in a synthetic
		// iterator loop.
		return "(" + r.renderNode(v.InitStatement) + " : " + r.renderExpr(v.Container) + ")"

	case *ast.Expression:
		return r.renderExpr(v)

	case *ast.InlineObject:
		return r.renderInlineObject(v)

	case *ast.Function:
		return r.renderTopLevelFunction(v)

	case *ast.Class:
		return r.renderClass(v)

	case *ast.Interface:
		return r.renderInterface(v)

	case *ast.Root:
		var b strings.Builder
		for _, s := range v.Statements {
			b.WriteString(r.renderNode(s))
			b.WriteString("\n")
		}
		return b.String()
	}
	return ""
}

func (r *renderer) renderVar(v *ast.Var) string {
	parts := make([]string, len(v.Definitions))
	for i, def := range v.Definitions {
		if def.Value != nil {
			parts[i] = def.Name + " = " + r.renderExpr(def.Value)
		} else {
			parts[i] = def.Name
		}
	}
	return "var " + strings.Join(parts, ", ") + ";"
}

// renderStatementsBlock always pushes a (possibly empty) local frame: most
// StatementsBlock nodes are a genuine `{...}` lexical scope
// (pkg/stmtxform.TransformBlock's output, with LocalNames populated from
// its own top-level `var` statements), but a few are the "head + body"
// structural pairing stmtxform uses internally for if/while/for/do
// (LocalNames nil, unwrapped directly by renderPrefixStatement/
// renderForStatement before reaching here). Pushing an empty frame for
// that shape, on the rare defensive path that does reach here with one,
// is a no-op for resolution purposes, so one code path serves both.
func (r *renderer) renderStatementsBlock(b *ast.StatementsBlock) string {
	r.pushLocals(b.LocalNames)
	defer r.pop()

	var out strings.Builder
	for i, s := range b.Statements {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(r.renderNode(s))
	}
	return out.String()
}

// renderBody renders a control-flow body: a real `{...}` block gets its
// braces back, a single unbraced statement renders as-is.
func (r *renderer) renderBody(n ast.Node) string {
	if blk, ok := n.(*ast.StatementsBlock); ok {
		return "{\n" + r.renderStatementsBlock(blk) + "\n}"
	}
	return r.renderNode(n)
}

// renderPrefixStatement handles every ast.PrefixStatement shape: the
// if/while/switch head+body pairing, do's body+condition pairing, return/
// throw/break/continue's single optional expression, and try/finally's
// plain block argument.
func (r *renderer) renderPrefixStatement(v *ast.PrefixStatement) string {
	switch v.Prefix {
	case "if", "while", "switch":
		pair, ok := v.Argument.(*ast.StatementsBlock)
		if !ok || len(pair.Statements) != 2 {
			return v.Prefix + " " + r.renderNode(v.Argument)
		}
		head := pair.Statements[0].(*ast.Statement)
		return v.Prefix + " (" + r.renderExpr(head.Expr) + ") " + r.renderBody(pair.Statements[1])

	case "do":
		pair, ok := v.Argument.(*ast.StatementsBlock)
		if !ok || len(pair.Statements) != 2 {
			return "do " + r.renderBody(v.Argument)
		}
		cond := pair.Statements[1].(*ast.Statement)
		return "do " + r.renderBody(pair.Statements[0]) + " while (" + r.renderExpr(cond.Expr) + ");"

	case "try", "finally":
		return v.Prefix + " " + r.renderBody(v.Argument)

	case "return", "throw", "break", "continue":
		if v.Argument == nil {
			return v.Prefix + ";"
		}
		st := v.Argument.(*ast.Statement)
		return v.Prefix + " " + r.renderExpr(st.Expr) + ";"
	}
	return v.Prefix + " " + r.renderNode(v.Argument)
}

func (r *renderer) renderForStatement(fs *ast.ForStatement) string {
	pair, ok := fs.Argument.(*ast.StatementsBlock)
	if !ok || len(pair.Statements) != 2 {
		return fs.Prefix + " " + r.renderNode(fs.Argument)
	}
	if fe, ok := pair.Statements[0].(*ast.ForEachExpression); ok {
		return r.renderForEachLoop(fe, pair.Statements[1])
	}
	return "for " + r.renderNode(pair.Statements[0]) + " " + r.renderBody(pair.Statements[1])
}

func (r *renderer) renderForExpression(fe *ast.ForExpression) string {
	init := ""
	if fe.InitStatement != nil {
		init = strings.TrimSuffix(r.renderNode(fe.InitStatement), ";")
	}
	cond := ""
	if fe.Condition != nil {
		cond = r.renderExpr(fe.Condition)
	}
	step := ""
	if fe.Step != nil {
		step = r.renderExpr(fe.Step)
	}
	return "(" + init + "; " + cond + "; " + step + ")"
}

// renderForEachLoop lowers a `for (T x : container)` loop (spec.md §4.5)
// to a plain three-part for-loop driving a host-supplied ObjectIterator,
// assigning into the loop variable as the first statement of the body.
func (r *renderer) renderForEachLoop(fe *ast.ForEachExpression, bodyNode ast.Node) string {
	r.iterCounter++
	iter := "__it" + strconv.Itoa(r.iterCounter)

	assign := strings.TrimSuffix(r.renderNode(fe.InitStatement), ";")
	assign += " = " + iter + ".next();"

	body := r.renderBody(bodyNode)
	body = strings.TrimPrefix(body, "{\n")
	body = strings.TrimSuffix(body, "\n}")

	return "for (var " + iter + " = new $p.ObjectIterator(" + r.renderExpr(fe.Container) + "); " +
		iter + ".hasNext(); ) {\n" + assign + "\n" + body + "\n}"
}

func (r *renderer) renderInlineObject(o *ast.InlineObject) string {
	parts := make([]string, len(o.Members))
	for i, m := range o.Members {
		if m.Label != "" {
			parts[i] = m.Label + ": " + r.renderExpr(m.Value)
		} else {
			parts[i] = r.renderExpr(m.Value)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (r *renderer) renderTopLevelFunction(fn *ast.Function) string {
	r.pushLocals(paramNames(fn.Params))
	defer r.pop()
	return "function " + fn.Name + "(" + r.renderParams(fn.Params) + ") {\n" + r.renderBlockBody(fn.Body) + "\n}"
}
