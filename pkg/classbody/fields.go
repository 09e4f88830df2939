package classbody

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/declare"
	"github.com/kent-wong/my-processing/pkg/exprxform"
)

var fieldModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "final": true, "static": true,
}

// appendFieldsAndMisc walks the extractor's remainder text (everything left
// over after class/method/constructor/function extraction), splits it into
// `;`-terminated segments and classifies each as a field declaration or, if
// it doesn't parse as one, a free-form statement appended to misc (spec.md
// §4.4's field rule and §4.6 step 7's "trailing miscellaneous").
func (d Deps) appendFieldsAndMisc(fields *[]*ast.Field, misc *[]*ast.Statement, remainderText string, classID int) {
	for _, seg := range declare.SplitFields(remainderText) {
		segText := strTrim(stripDeclPlaceholders(seg))
		segText = strings.TrimSuffix(segText, ";")
		segText = strTrim(segText)
		if segText == "" {
			continue
		}
		if f := d.parseField(segText, classID); f != nil {
			*fields = append(*fields, f)
			continue
		}
		expr := exprxform.Transform(segText, d.exprDeps(classID))
		*misc = append(*misc, &ast.Statement{Expr: expr})
	}
}

// parseField parses `[modifiers] Type[...] name[=expr](, name[=expr])*`
// into a *ast.Field, returning nil when text doesn't match that shape (the
// caller then falls back to treating it as a misc statement).
func (d Deps) parseField(text string, classID int) *ast.Field {
	i := 0
	isStatic := false
	for {
		name, j, ok := scanIdentPath(text, i)
		if !ok || !fieldModifiers[name] {
			break
		}
		if name == "static" {
			isStatic = true
		}
		i = skipSpace(text, j)
	}

	typeName, j, ok := scanIdentPath(text, i)
	if !ok {
		return nil
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
	if i >= len(text) || !isIdentStart(text[i]) {
		return nil
	}

	var defs []*ast.VarDefinition
	for _, seg := range splitTopLevelCommas(text[i:]) {
		def := d.parseVarDefinition(strTrim(seg), classID)
		if def == nil {
			return nil
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil
	}

	return &ast.Field{Definitions: defs, DeclaredType: typeName, IsStatic: isStatic}
}

// parseVarDefinition parses one `name[ = expr]` binding.
func (d Deps) parseVarDefinition(text string, classID int) *ast.VarDefinition {
	name, j, ok := scanIdentPath(text, 0)
	if !ok {
		return nil
	}
	j = skipSpace(text, j)
	if j >= len(text) {
		return &ast.VarDefinition{Name: name, IsDefault: true}
	}
	if text[j] != '=' || (j+1 < len(text) && text[j+1] == '=') {
		return nil
	}
	valueText := strTrim(text[j+1:])
	if valueText == "" {
		return &ast.VarDefinition{Name: name, IsDefault: true}
	}
	expr := exprxform.Transform(valueText, d.exprDeps(classID))
	return &ast.VarDefinition{Name: name, Value: expr}
}
