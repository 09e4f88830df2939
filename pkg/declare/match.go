package declare

import "github.com/kent-wong/my-processing/pkg/atom"

// ClassHeader is what matchClassHeader extracts from a class/interface
// declaration header (spec.md §4.4, first bullet). Exported so
// pkg/classbody can read the parsed header back out of the atom the
// extractor produced.
type ClassHeader struct {
	IsInterface    bool
	Name           string
	BaseNames      []string
	InterfaceNames []string
	BodyAtomIdx    int
	Consumed       int // word count consumed, relative to the match start
}

// matchClassHeader attempts to match, starting at words[start]: optional
// modifiers, `class`|`interface`, a name, optional `extends <list>`,
// optional `implements <list>`, and a brace-atom body reference.
func matchClassHeader(words []word, start int) (*ClassHeader, bool) {
	i := start
	for i < len(words) && isModifier(words[i]) {
		i++
	}
	if i >= len(words) || words[i].kind != wordIdent {
		return nil, false
	}
	if words[i].text != "class" && words[i].text != "interface" {
		return nil, false
	}
	isInterface := words[i].text == "interface"
	i++

	if i >= len(words) || words[i].kind != wordIdent {
		return nil, false
	}
	name := words[i].text
	i++

	var baseNames, interfaceNames []string
	if i < len(words) && words[i].kind == wordIdent && words[i].text == "extends" {
		i++
		baseNames, i = parseNameList(words, i)
	}
	if i < len(words) && words[i].kind == wordIdent && words[i].text == "implements" {
		i++
		interfaceNames, i = parseNameList(words, i)
	}

	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	kind, idx, ok := atom.ParseToken(words[i].text)
	if !ok || kind != atom.KindBrace {
		return nil, false
	}
	i++

	return &ClassHeader{
		IsInterface:    isInterface,
		Name:           name,
		BaseNames:      baseNames,
		InterfaceNames: interfaceNames,
		BodyAtomIdx:    idx,
		Consumed:       i - start,
	}, true
}

// parseNameList parses a comma-separated list of dotted identifiers
// starting at words[i], returning the names and the index just past the
// list.
func parseNameList(words []word, i int) ([]string, int) {
	var names []string
	for i < len(words) && words[i].kind == wordIdent {
		names = append(names, words[i].text)
		i++
		if i < len(words) && words[i].kind == wordPunct && words[i].text == "," {
			i++
			continue
		}
		break
	}
	return names, i
}

// MethodHeader describes a matched method, function or constructor header.
type MethodHeader struct {
	Name       string
	ParamsIdx  int  // index of the `(...)` atom
	BodyIdx    int  // index of the `{...}` atom, or -1 for `;`-terminated abstract methods
	IsAbstract bool // true when terminated by `;` instead of a body atom
	Consumed   int
}

// matchMethodHeader matches: optional modifiers, a dotted return-type with
// optional array-bracket atoms, a method name, a `(...)` atom, an optional
// `throws <list>`, and either a brace-atom body or a bare `;`.
func matchMethodHeader(words []word, start int) (*MethodHeader, bool) {
	i := start
	for i < len(words) && isModifier(words[i]) {
		i++
	}
	if i >= len(words) || words[i].kind != wordIdent {
		return nil, false
	}
	// return type
	i++
	for i < len(words) && words[i].kind == wordAtomRef {
		if kind, _, ok := atom.ParseToken(words[i].text); !ok || kind != atom.KindBracket {
			break
		}
		i++
	}
	if i >= len(words) || words[i].kind != wordIdent {
		return nil, false
	}
	name := words[i].text
	i++

	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	kind, paramsIdx, ok := atom.ParseToken(words[i].text)
	if !ok || kind != atom.KindParen {
		return nil, false
	}
	i++

	if i < len(words) && words[i].kind == wordIdent && words[i].text == "throws" {
		i++
		_, i = parseNameList(words, i)
	}

	if i < len(words) && words[i].kind == wordPunct && words[i].text == ";" {
		return &MethodHeader{Name: name, ParamsIdx: paramsIdx, BodyIdx: -1, IsAbstract: true, Consumed: i + 1 - start}, true
	}
	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	bkind, bodyIdx, ok := atom.ParseToken(words[i].text)
	if !ok || bkind != atom.KindBrace {
		return nil, false
	}
	i++
	return &MethodHeader{Name: name, ParamsIdx: paramsIdx, BodyIdx: bodyIdx, Consumed: i - start}, true
}

// matchFunctionHeader matches the literal `function`, an optional name, a
// `(...)` atom and a brace-atom body.
func matchFunctionHeader(words []word, start int) (*MethodHeader, bool) {
	i := start
	if i >= len(words) || words[i].kind != wordIdent || words[i].text != "function" {
		return nil, false
	}
	i++
	name := ""
	if i < len(words) && words[i].kind == wordIdent {
		name = words[i].text
		i++
	}
	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	kind, paramsIdx, ok := atom.ParseToken(words[i].text)
	if !ok || kind != atom.KindParen {
		return nil, false
	}
	i++
	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	bkind, bodyIdx, ok := atom.ParseToken(words[i].text)
	if !ok || bkind != atom.KindBrace {
		return nil, false
	}
	i++
	return &MethodHeader{Name: name, ParamsIdx: paramsIdx, BodyIdx: bodyIdx, Consumed: i - start}, true
}

// matchConstructorHeader matches a constructor header: only valid when
// className is non-empty and the declared name equals it (spec.md §4.4).
func matchConstructorHeader(words []word, start int, className string) (*MethodHeader, bool) {
	if className == "" {
		return nil, false
	}
	i := start
	for i < len(words) && isModifier(words[i]) {
		i++
	}
	if i >= len(words) || words[i].kind != wordIdent || words[i].text != className {
		return nil, false
	}
	i++
	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	kind, paramsIdx, ok := atom.ParseToken(words[i].text)
	if !ok || kind != atom.KindParen {
		return nil, false
	}
	i++
	if i < len(words) && words[i].kind == wordIdent && words[i].text == "throws" {
		i++
		_, i = parseNameList(words, i)
	}
	if i >= len(words) || words[i].kind != wordAtomRef {
		return nil, false
	}
	bkind, bodyIdx, ok := atom.ParseToken(words[i].text)
	if !ok || bkind != atom.KindBrace {
		return nil, false
	}
	i++
	return &MethodHeader{Name: className, ParamsIdx: paramsIdx, BodyIdx: bodyIdx, Consumed: i - start}, true
}
