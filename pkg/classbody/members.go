package classbody

import (
	"strconv"
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/stmtxform"
)

// buildMethod assembles one concrete method header+body into its
// overload-disambiguated AST form (spec.md §3: `MethodID` is
// `name$arity[_overload]`).
func (d Deps) buildMethod(mh *declare.MethodHeader, classID int, isStatic bool, seen map[string]int) *ast.Method {
	params := d.buildParams(mh.ParamsIdx)
	body := stmtxform.TransformBlock(mh.BodyIdx, d.stmtDeps(classID))
	return &ast.Method{
		MethodID:  overloadSuffix(mh.Name, len(params.List), seen),
		Name:      mh.Name,
		Params:    params,
		Body:      body,
		IsStatic:  isStatic,
		HasVararg: params.VarargParam != nil,
	}
}

// buildConstructor assembles one constructor header+body. ConstrName is
// `$constr_N` where N is the declared arity (spec.md §4.6 step 8).
func (d Deps) buildConstructor(mh *declare.MethodHeader, classID int) *ast.Constructor {
	params := d.buildParams(mh.ParamsIdx)
	body := stmtxform.TransformBlock(mh.BodyIdx, d.stmtDeps(classID))
	return &ast.Constructor{
		ConstrName:       "$constr_" + strconv.Itoa(len(params.List)),
		Params:           params,
		Body:             body,
		HasExplicitChain: firstStatementIsChainCall(body),
	}
}

// buildFunction assembles a standalone `function` expression (spec.md
// §4.4's Function row); Name is empty for an anonymous function literal.
func (d Deps) buildFunction(mh *declare.MethodHeader, classID int) *ast.Function {
	params := d.buildParams(mh.ParamsIdx)
	body := stmtxform.TransformBlock(mh.BodyIdx, d.stmtDeps(classID))
	return &ast.Function{Name: mh.Name, Params: params, Body: body}
}

// firstStatementIsChainCall reports whether body's first statement is
// already a `$superCstr(...)` or `$constr(...)` call, so the assembler
// knows not to prepend an implicit `$superCstr()` (spec.md §4.6 step 8).
// pkg/exprxform leaves the call's argument list as a paren-atom
// placeholder, so the transformed text reads `$superCstr"B N"`.
func firstStatementIsChainCall(body *ast.StatementsBlock) bool {
	if len(body.Statements) == 0 {
		return false
	}
	st, ok := body.Statements[0].(*ast.Statement)
	if !ok || st.Expr == nil {
		return false
	}
	return strings.HasPrefix(st.Expr.Text, `$superCstr"B `) || strings.HasPrefix(st.Expr.Text, `$constr"B `)
}

// buildParams parses a `(...)` paren atom's inner text into a declared
// parameter list, recognizing a trailing `T... name` vararg parameter.
func (d Deps) buildParams(parenIdx int) *ast.Params {
	entry := d.Atoms.MustGet(parenIdx)
	inner := strings.TrimSuffix(strings.TrimPrefix(entry.Text, "("), ")")
	inner = strTrim(inner)
	if inner == "" {
		return &ast.Params{}
	}

	params := &ast.Params{}
	for _, seg := range splitTopLevelCommas(inner) {
		p, isVararg := parseParam(strTrim(seg))
		if p == nil {
			continue
		}
		params.List = append(params.List, p)
		if isVararg {
			params.VarargParam = p
		}
	}
	return params
}

// parseParam parses one `[final] Type[...] name` parameter declaration,
// including array-bracket atoms on the type (`int[] xs`).
func parseParam(text string) (*ast.Param, bool) {
	i := 0
	for {
		if j, ok := matchWord(text, i, "final"); ok {
			i = skipSpace(text, j)
			continue
		}
		break
	}

	typeName, j, ok := scanIdentPath(text, i)
	if !ok {
		return nil, false
	}
	i = skipSpace(text, j)

	for i < len(text) {
		kind, _, next, ok2 := scanAtomRef(text, i)
		if !ok2 || kind != atom.KindBracket {
			break
		}
		typeName += "[]"
		i = skipSpace(text, next)
	}

	vararg := false
	if strings.HasPrefix(text[i:], "...") {
		vararg = true
		i = skipSpace(text, i+3)
	}

	name, j2, ok3 := scanIdentPath(text, i)
	if !ok3 {
		// A bare type with no name (rare, but tolerate it per spec.md §7's
		// "pass unrecognized constructs through unchanged") becomes an
		// unnamed parameter keyed by its type.
		return &ast.Param{Name: typeName, Type: typeName}, vararg
	}
	_ = j2
	return &ast.Param{Name: name, Type: typeName}, vararg
}
