// Package ast defines the tagged-variant AST built by the declaration
// extractor, expression/statement transformers and class body assembler
// (spec.md §3 "AST nodes"). Every variant is a plain data struct; none of
// them know how to render themselves — per the design note on dynamic
// dispatch, rendering lives in pkg/render as one exhaustive type switch
// over these concrete types, not as a method on each one.
package ast

// Node is the marker interface implemented by every AST variant. It carries
// no behavior; it exists only so a []Node can hold any mix of statements.
type Node interface {
	astNode()
}

// Root is the whole translation unit: an ordered list of top-level
// statements (which may themselves be Class/Interface declarations
// interleaved with free statements).
type Root struct {
	Statements []Node
}

func (*Root) astNode() {}

// Class is a named class declaration. ClassID is the registry id minted by
// session.Session.Register for this declaration.
type Class struct {
	ClassID int
	Name    string
	Body    *ClassBody
}

func (*Class) astNode() {}

// Interface is a named interface declaration.
type Interface struct {
	ClassID int
	Name    string
	Body    *InterfaceBody
}

func (*Interface) astNode() {}

// ClassBody holds everything the class/interface body transformer
// assembled from one atomized `{...}` span: fields, methods (already
// overload-suffixed), constructors, inner classes and inline functions.
type ClassBody struct {
	ClassID        int
	Name           string
	BaseName       string // empty when there is no `extends`
	InterfaceNames []string

	Fields       []*Field
	Methods      []*Method
	Constructors []*Constructor
	Functions    []*Function
	InnerClasses []Node // *InnerClass or *InnerInterface

	// TrailingMisc is free-form code found between declarations that
	// doesn't parse as a field/method/constructor — emitted verbatim in
	// source order (spec.md §4.6 step 7).
	TrailingMisc []*Statement
}

func (*ClassBody) astNode() {}

// InterfaceBody holds an interface's declared method names (interfaces
// contribute no implementation, only a name contract) plus any nested
// types and field constants.
type InterfaceBody struct {
	ClassID      int
	Name         string
	BaseNames    []string
	MethodNames  []string
	Fields       []*Field
	InnerClasses []Node
}

func (*InterfaceBody) astNode() {}

// InnerClass is a class nested inside another class's body.
type InnerClass struct {
	Name     string
	Body     *ClassBody
	IsStatic bool
}

func (*InnerClass) astNode() {}

// InnerInterface is an interface nested inside another class's body.
type InnerInterface struct {
	Name     string
	Body     *InterfaceBody
	IsStatic bool
}

func (*InnerInterface) astNode() {}

// Method is an instance or static method belonging to a class body. MethodID
// is the overload-disambiguated registration name (`name$arity[_N]`,
// spec.md §3 invariants).
type Method struct {
	MethodID  string
	Name      string
	Params    *Params
	Body      *StatementsBlock
	IsStatic  bool
	HasVararg bool
}

func (*Method) astNode() {}

// Constructor is one arity-specific constructor body; ConstrName is
// `$constr_N` where N is len(Params.List).
type Constructor struct {
	ConstrName string
	Params     *Params
	Body       *StatementsBlock
	// HasExplicitChain records whether the body already calls
	// $superCstr(...) or $constr(...) itself; when it does not, the
	// renderer prepends an implicit $superCstr() call.
	HasExplicitChain bool
}

func (*Constructor) astNode() {}

// Field is one field declaration statement, possibly declaring several
// names at once (`int a = 1, b = 2;`).
type Field struct {
	Definitions  []*VarDefinition
	DeclaredType string
	IsStatic     bool
}

func (*Field) astNode() {}

// VarDefinition is a single `name[ = value]` binding inside a Field or Var.
type VarDefinition struct {
	Name      string
	Value     *Expression // nil when absent
	IsDefault bool        // true when Value is nil and a type default is emitted instead
}

func (*VarDefinition) astNode() {}

// Var is a local variable declaration statement (`var x = 1, y;`).
type Var struct {
	Definitions []*VarDefinition
	Type        string
}

func (*Var) astNode() {}

// Params is a method/function/constructor parameter list.
type Params struct {
	List        []*Param
	VarargParam *Param // nil unless the last parameter is `T... name`
}

func (*Params) astNode() {}

// Param is one declared parameter.
type Param struct {
	Name string
	Type string
}

func (*Param) astNode() {}

// Statement wraps a single expression statement.
type Statement struct {
	Expr *Expression
}

func (*Statement) astNode() {}

// StatementsBlock is a `{ ... }` block: an ordered list of statements plus
// the set of names it declares locally (used by the renderer's
// name-resolution context to shadow outer bindings).
type StatementsBlock struct {
	Statements []Node
	LocalNames map[string]bool
}

func (*StatementsBlock) astNode() {}

// ForStatement, CatchStatement, PrefixStatement, SwitchCase and Label all
// share the same shape: literal prefix text followed by one argument node
// (spec.md §3).
type ForStatement struct {
	Prefix   string
	Argument Node
}

func (*ForStatement) astNode() {}

type CatchStatement struct {
	Prefix   string
	Argument Node
}

func (*CatchStatement) astNode() {}

type PrefixStatement struct {
	Prefix   string
	Argument Node
}

func (*PrefixStatement) astNode() {}

type SwitchCase struct {
	Prefix   string
	Argument Node
}

func (*SwitchCase) astNode() {}

type Label struct {
	Prefix   string
	Argument Node
}

func (*Label) astNode() {}

// ForExpression is the classic `init; cond; step` for-loop head.
type ForExpression struct {
	InitStatement Node
	Condition     *Expression // nil means "always true"
	Step          *Expression // nil means no step
}

func (*ForExpression) astNode() {}

// ForInExpression is a `for (x in obj)` key-enumeration loop head.
type ForInExpression struct {
	InitStatement Node
	Container     *Expression
}

func (*ForInExpression) astNode() {}

// ForEachExpression is a `for (T x : container)` loop head, lowered to a
// synthetic iterator per spec.md §4.5.
type ForEachExpression struct {
	InitStatement Node
	Container     *Expression
}

func (*ForEachExpression) astNode() {}

// Expression wraps already-lowered text plus any embedded sub-transforms
// that still need identifier-context substitution at render time. Each
// entry in Transforms corresponds to one `"!N"` placeholder inside Text.
//
// Inline is set only for a `new T() { ... }` expression (spec.md §4.5):
// rather than splicing its rendered form through the generic `"!N"`
// mechanism, the renderer special-cases a non-nil Inline and emits
// `new (<ClassBody IIFE>)()` directly at the expression's position, since
// an inline class's body assembly needs the same class-body renderer the
// top-level weighted walk uses.
type Expression struct {
	Text       string
	Transforms []*Expression
	Inline     *InlineClass
}

func (*Expression) astNode() {}

// InlineClass is the AST for `new T() { ... }`: a synthetic subclass of T
// with a generated name, per spec.md §4.5.
type InlineClass struct {
	SyntheticName string
	BaseName      string
	Body          *ClassBody
}

func (*InlineClass) astNode() {}

// InlineObject is a `{label: value, ...}` object literal (as opposed to an
// array literal, which is just an Expression).
type InlineObject struct {
	Members []InlineObjectMember
}

func (*InlineObject) astNode() {}

// InlineObjectMember is one entry of an InlineObject; Label is empty for an
// unlabeled (array-like) member.
type InlineObjectMember struct {
	Label string
	Value *Expression
}

// Function is a standalone function expression (named or anonymous).
type Function struct {
	Name   string // empty for anonymous functions
	Params *Params
	Body   *StatementsBlock
}

func (*Function) astNode() {}
