// Package stmtxform implements spec.md §4.5's statement-level half of the
// expression/statement transformer: it walks one atomized block body
// index-by-index, classifying each statement by its leading control-flow
// keyword into the Statement/ForStatement/CatchStatement/SwitchCase/Label
// AST shapes defined in pkg/ast, handing every plain expression off to
// pkg/exprxform. Control-flow statements end at their body (brace atom or
// single nested statement); everything else ends at the next top-level `;`.
package stmtxform

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
)

// Deps are the collaborators TransformBlock needs from its caller (normally
// pkg/classbody, which owns the session's atom table and the exprxform
// wiring). Kept as a struct of callbacks rather than direct imports for the
// same reason pkg/exprxform does: classbody needs stmtxform for method
// bodies, and stmtxform needs exprxform for every leaf expression, so
// neither package imports the other directly.
type Deps struct {
	Atoms         *atom.Table
	TransformExpr func(text string) *ast.Expression
}

var controlKeywords = []string{
	"if", "for", "while", "do", "switch", "try", "return", "throw",
	"break", "continue", "case", "default",
}

// TransformBlock resolves a `{...}` brace atom's body into a
// *ast.StatementsBlock.
func TransformBlock(bodyAtomIdx int, d Deps) *ast.StatementsBlock {
	entry := d.Atoms.MustGet(bodyAtomIdx)
	inner := strings.TrimSuffix(strings.TrimPrefix(entry.Text, "{"), "}")
	return transformStatementsText(inner, d)
}

// TransformTopLevel resolves a flat, non-brace-wrapped sequence of
// top-level statements into a *ast.StatementsBlock. pkg/translate uses this
// for the free statements (and bare sketch functions' call sites) left over
// once the top-level declaration extractor has pulled out every
// class/interface/function/constructor header — there is no enclosing `{}`
// brace atom to key off of at the top level, unlike a class or function
// body.
func TransformTopLevel(text string, d Deps) *ast.StatementsBlock {
	return transformStatementsText(text, d)
}

func transformStatementsText(text string, d Deps) *ast.StatementsBlock {
	block := &ast.StatementsBlock{LocalNames: map[string]bool{}}
	i := 0
	for {
		i = skipSpace(text, i)
		if i >= len(text) {
			break
		}
		if text[i] == ';' {
			i++
			continue
		}
		node, next := parseStatement(text, i, d)
		if node == nil {
			break
		}
		block.Statements = append(block.Statements, node)
		if v, ok := node.(*ast.Var); ok {
			for _, def := range v.Definitions {
				block.LocalNames[def.Name] = true
			}
		}
		i = next
	}
	return block
}

// parseStatement parses exactly one statement starting at i and returns it
// along with the index just past it (past the trailing `;` for simple
// statements, past the body for control-flow ones).
func parseStatement(s string, i int, d Deps) (ast.Node, int) {
	if j, ok := matchWord(s, i, "var"); ok {
		return parseVarStatement(s, j, d)
	}
	for _, kw := range controlKeywords {
		if j, ok := matchWord(s, i, kw); ok {
			return dispatchKeyword(kw, s, j, d)
		}
	}
	if j, ok := scanLabelAt(s, i); ok {
		inner, next := parseStatement(s, j+1, d)
		return &ast.Label{Prefix: strTrim(s[i:j]) + ":", Argument: inner}, next
	}
	// A typed local declaration (`T name = ...;`, `T[] a, b;`) is a var.
	if t, j, ok := scanIdent(s, i); ok && t != "else" && t != "new" {
		k := skipSpace(s, j)
		for kind, _, next, isAtom := scanAtomRef(s, k); isAtom && kind == atom.KindBracket; kind, _, next, isAtom = scanAtomRef(s, k) {
			k = skipSpace(s, next)
		}
		if _, e, ok := scanIdent(s, k); ok {
			e = skipSpace(s, e)
			if e >= len(s) || s[e] == ';' || s[e] == ',' || (s[e] == '=' && (e+1 >= len(s) || s[e+1] != '=')) {
				return parseVarStatement(s, k, d)
			}
		}
	}
	end := findTopLevelSemicolon(s, i)
	expr := d.TransformExpr(strTrim(s[i:end]))
	next := end
	if next < len(s) && s[next] == ';' {
		next++
	}
	return &ast.Statement{Expr: expr}, next
}

func dispatchKeyword(kw, s string, after int, d Deps) (ast.Node, int) {
	switch kw {
	case "if", "while", "switch":
		node, next := parseParenHead(s, after, d)
		return &ast.PrefixStatement{Prefix: kw, Argument: node}, next
	case "for":
		return parseForHead(s, after, d)
	case "do":
		return parseDo(s, after, d)
	case "try":
		return parseTry(s, after, d)
	case "return":
		return parseReturnThrow("return", s, after, d)
	case "throw":
		return parseReturnThrow("throw", s, after, d)
	case "break", "continue":
		j := skipSpace(s, after)
		name, end, ok := scanIdent(s, j)
		var arg ast.Node
		next := after
		if ok && end <= findTopLevelSemicolon(s, j) {
			arg = &ast.Statement{Expr: &ast.Expression{Text: name}}
			next = end
		}
		next = findTopLevelSemicolon(s, next)
		if next < len(s) && s[next] == ';' {
			next++
		}
		return &ast.PrefixStatement{Prefix: kw, Argument: arg}, next
	case "case":
		end := indexTopLevelColon(s, after)
		expr := d.TransformExpr(strTrim(s[after:end]))
		next := end
		if next < len(s) && s[next] == ':' {
			next++
		}
		return &ast.SwitchCase{Prefix: "case", Argument: &ast.Statement{Expr: expr}}, next
	case "default":
		j := skipSpace(s, after)
		next := j
		if next < len(s) && s[next] == ':' {
			next++
		}
		return &ast.SwitchCase{Prefix: "default", Argument: nil}, next
	}
	return &ast.Statement{Expr: d.TransformExpr(s[after:])}, len(s)
}

// parseParenHead handles `(cond) body` for if/while/switch, returning a
// head+body pair and the index just past the body.
func parseParenHead(s string, after int, d Deps) (ast.Node, int) {
	j := skipSpace(s, after)
	kind, idx, next, ok := scanAtomRef(s, j)
	if !ok || kind != atom.KindParen {
		end := findTopLevelSemicolon(s, j)
		return &ast.Statement{Expr: d.TransformExpr(strTrim(s[j:end]))}, end
	}
	headText := strings.TrimSuffix(strings.TrimPrefix(d.Atoms.MustGet(idx).Text, "("), ")")
	headExpr := d.TransformExpr(headText)
	body, bodyEnd := parseBraceOrSingle(s, next, d)
	return &ast.StatementsBlock{Statements: []ast.Node{&ast.Statement{Expr: headExpr}, body}}, bodyEnd
}

// parseBraceOrSingle resolves the statement/block following a control-flow
// head and returns it with the index just past it.
func parseBraceOrSingle(s string, from int, d Deps) (ast.Node, int) {
	j := skipSpace(s, from)
	if j >= len(s) {
		return nil, j
	}
	if kind, idx, next, ok := scanAtomRef(s, j); ok && kind == atom.KindBrace {
		return TransformBlock(idx, d), next
	}
	return parseStatement(s, j, d)
}

func parseForHead(s string, after int, d Deps) (ast.Node, int) {
	j := skipSpace(s, after)
	kind, idx, next, ok := scanAtomRef(s, j)
	if !ok || kind != atom.KindParen {
		end := findTopLevelSemicolon(s, j)
		return &ast.Statement{Expr: d.TransformExpr(strTrim(s[j:end]))}, end
	}
	headText := strings.TrimSuffix(strings.TrimPrefix(d.Atoms.MustGet(idx).Text, "("), ")")
	body, bodyEnd := parseBraceOrSingle(s, next, d)

	var head ast.Node
	switch {
	case containsTopLevelWord(headText, "in"):
		parts := splitOnTopLevelWord(headText, "in")
		head = &ast.ForInExpression{
			InitStatement: &ast.Statement{Expr: d.TransformExpr(strTrim(parts[0]))},
			Container:     d.TransformExpr(strTrim(parts[1])),
		}
	case strings.Contains(headText, ":") && !strings.Contains(headText, ";"):
		parts := strings.SplitN(headText, ":", 2)
		head = &ast.ForEachExpression{
			InitStatement: &ast.Statement{Expr: d.TransformExpr(strTrim(parts[0]))},
			Container:     d.TransformExpr(strTrim(parts[1])),
		}
	default:
		parts := splitTopLevelSemicolons(headText)
		fe := &ast.ForExpression{}
		if len(parts) > 0 && strTrim(parts[0]) != "" {
			fe.InitStatement = &ast.Statement{Expr: d.TransformExpr(strTrim(parts[0]))}
		}
		if len(parts) > 1 && strTrim(parts[1]) != "" {
			fe.Condition = d.TransformExpr(strTrim(parts[1]))
		}
		if len(parts) > 2 && strTrim(parts[2]) != "" {
			fe.Step = d.TransformExpr(strTrim(parts[2]))
		}
		head = fe
	}
	return &ast.ForStatement{Prefix: "for", Argument: &ast.StatementsBlock{
		Statements: []ast.Node{head, body},
	}}, bodyEnd
}

// parseDo handles `do body while (cond);`.
func parseDo(s string, after int, d Deps) (ast.Node, int) {
	body, next := parseBraceOrSingle(s, after, d)
	j := skipSpace(s, next)
	k, ok := matchWord(s, j, "while")
	if !ok {
		return &ast.PrefixStatement{Prefix: "do", Argument: body}, next
	}
	k = skipSpace(s, k)
	kind, idx, after2, ok2 := scanAtomRef(s, k)
	if !ok2 || kind != atom.KindParen {
		return &ast.PrefixStatement{Prefix: "do", Argument: body}, next
	}
	condText := strings.TrimSuffix(strings.TrimPrefix(d.Atoms.MustGet(idx).Text, "("), ")")
	cond := d.TransformExpr(condText)
	final := after2
	final = skipSpace(s, final)
	if final < len(s) && s[final] == ';' {
		final++
	}
	return &ast.PrefixStatement{Prefix: "do", Argument: &ast.StatementsBlock{
		Statements: []ast.Node{body, &ast.Statement{Expr: cond}},
	}}, final
}

// parseTry parses `try {block} (catch (param) {block})* (finally {block})?`.
func parseTry(s string, after int, d Deps) (ast.Node, int) {
	j := skipSpace(s, after)
	kind, idx, next, ok := scanAtomRef(s, j)
	if !ok || kind != atom.KindBrace {
		end := findTopLevelSemicolon(s, j)
		return &ast.Statement{Expr: d.TransformExpr(strTrim(s[j:end]))}, end
	}
	nodes := []ast.Node{&ast.PrefixStatement{Prefix: "try", Argument: TransformBlock(idx, d)}}
	j = skipSpace(s, next)

	for {
		k, ok := matchWord(s, j, "catch")
		if !ok {
			break
		}
		k = skipSpace(s, k)
		pkind, pidx, pnext, pok := scanAtomRef(s, k)
		if !pok || pkind != atom.KindParen {
			break
		}
		param := strings.TrimSuffix(strings.TrimPrefix(d.Atoms.MustGet(pidx).Text, "("), ")")
		k = skipSpace(s, pnext)
		bkind, bidx, bnext, bok := scanAtomRef(s, k)
		if !bok || bkind != atom.KindBrace {
			break
		}
		nodes = append(nodes, &ast.CatchStatement{Prefix: strTrim(param), Argument: TransformBlock(bidx, d)})
		j = skipSpace(s, bnext)
	}

	final := j
	if k, ok := matchWord(s, j, "finally"); ok {
		k = skipSpace(s, k)
		if fkind, fidx, fnext, fok := scanAtomRef(s, k); fok && fkind == atom.KindBrace {
			nodes = append(nodes, &ast.PrefixStatement{Prefix: "finally", Argument: TransformBlock(fidx, d)})
			final = fnext
		}
	}

	return &ast.StatementsBlock{Statements: nodes}, final
}

func parseReturnThrow(kw, s string, after int, d Deps) (ast.Node, int) {
	j := skipSpace(s, after)
	end := findTopLevelSemicolon(s, j)
	rest := strTrim(s[j:end])
	next := end
	if next < len(s) && s[next] == ';' {
		next++
	}
	if rest == "" {
		return &ast.PrefixStatement{Prefix: kw, Argument: nil}, next
	}
	return &ast.PrefixStatement{Prefix: kw, Argument: &ast.Statement{Expr: d.TransformExpr(rest)}}, next
}

func parseVarStatement(s string, after int, d Deps) (*ast.Var, int) {
	end := findTopLevelSemicolon(s, after)
	rest := s[after:end]
	next := end
	if next < len(s) && s[next] == ';' {
		next++
	}
	v := &ast.Var{}
	for _, part := range splitTopLevelCommas(rest) {
		part = strTrim(part)
		if part == "" {
			continue
		}
		if eq := indexTopLevelEquals(part); eq >= 0 {
			v.Definitions = append(v.Definitions, &ast.VarDefinition{
				Name:  strTrim(part[:eq]),
				Value: d.TransformExpr(strTrim(part[eq+1:])),
			})
			continue
		}
		v.Definitions = append(v.Definitions, &ast.VarDefinition{Name: part, IsDefault: true})
	}
	return v, next
}

// findTopLevelSemicolon returns the index of the next top-level `;` at or
// after i, or len(s) when none remains.
func findTopLevelSemicolon(s string, i int) int {
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next
				continue
			}
		}
		if s[i] == ';' {
			return i
		}
		i++
	}
	return len(s)
}

func indexTopLevelColon(s string, i int) int {
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next
				continue
			}
		}
		if s[i] == ':' {
			return i
		}
		i++
	}
	return len(s)
}

func indexTopLevelEquals(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next - 1
				continue
			}
		}
		if s[i] == '=' && !(i+1 < len(s) && s[i+1] == '=') && !(i > 0 && (s[i-1] == '!' || s[i-1] == '<' || s[i-1] == '>' || s[i-1] == '=')) {
			return i
		}
	}
	return -1
}

func splitTopLevelCommas(s string) []string {
	var out []string
	start, i := 0, 0
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next
				continue
			}
		}
		if s[i] == ',' {
			out = append(out, s[start:i])
			i++
			start = i
			continue
		}
		i++
	}
	out = append(out, s[start:])
	return out
}

func splitTopLevelSemicolons(s string) []string {
	var segs []string
	start := 0
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			if _, _, next, ok := scanAtomRef(s, i); ok {
				i = next
				continue
			}
		}
		if s[i] == ';' {
			segs = append(segs, s[start:i])
			i++
			start = i
			continue
		}
		i++
	}
	if strTrim(s[start:]) != "" {
		segs = append(segs, s[start:])
	}
	return segs
}

func scanLabelAt(s string, i int) (int, bool) {
	name, j, ok := scanIdent(s, i)
	if !ok || name == "" {
		return 0, false
	}
	j = skipSpace(s, j)
	if j < len(s) && s[j] == ':' && !(j+1 < len(s) && s[j+1] == ':') {
		return j, true
	}
	return 0, false
}

func containsTopLevelWord(s, word string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := matchWord(s, i, word); ok {
			return true
		}
	}
	return false
}

func splitOnTopLevelWord(s, word string) [2]string {
	for i := 0; i < len(s); i++ {
		if j, ok := matchWord(s, i, word); ok {
			return [2]string{s[:i], s[j:]}
		}
	}
	return [2]string{s, ""}
}
