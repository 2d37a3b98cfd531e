package gen

import "github.com/syssam/specgen/schema/field"

// MemberKind is the kind of a generated member.
type MemberKind uint8

// List of member kinds.
const (
	KindPredicate MemberKind = iota + 1
	KindSpecification
	KindJoinAccessor
	KindFetchAccessor
)

// String returns the name of the member kind.
func (k MemberKind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindSpecification:
		return "specification"
	case KindJoinAccessor:
		return "join"
	case KindFetchAccessor:
		return "fetch"
	default:
		return "invalid"
	}
}

// Context is the implicit criteria context a member receives besides the
// query root.
type Context uint8

// List of implicit contexts.
const (
	NoContext Context = iota
	// BuilderContext is passed to filtering predicates.
	BuilderContext
	// QueryContext is passed to fetch predicates.
	QueryContext
)

// ParamForm is the shape of an operand parameter.
type ParamForm uint8

// List of parameter forms.
const (
	// Scalar is a single value of the parameter type.
	Scalar ParamForm = iota
	// Variadic is a variadic list of the parameter type.
	Variadic
	// Slice is a slice of the parameter type.
	Slice
)

// Param is a declared operand of a generated member.
type Param struct {
	Name string
	Type *field.TypeInfo
	Form ParamForm
}

// Member is a single generated function. Members are created by the
// synthesizer and owned by exactly one module.
type Member struct {
	Kind    MemberKind
	Name    string
	Field   *Field
	Op      Op
	Negated bool
	// Context is the implicit context of predicates.
	Context Context
	// Params holds the declared operands, in order.
	Params []*Param
	// Target is the related type of join and fetch accessors.
	Target *field.TypeInfo
	Body   []Stmt
}

// GoName returns the exported Go identifier of the member. Members sharing
// a logical name (a fetch accessor, its predicate and its specification)
// are told apart by a kind suffix.
func (m *Member) GoName() string {
	switch m.Kind {
	case KindPredicate:
		return exported(m.Name) + "Predicate"
	case KindFetchAccessor:
		return exported(m.Name) + "Handle"
	default:
		return exported(m.Name)
	}
}

// Stmt is a statement of a member body.
type Stmt interface{ stmt() }

// Expr is an expression of a member body.
type Expr interface{ expr() }

type (
	// Return returns the value of an expression.
	Return struct{ Value Expr }

	// Do evaluates an expression for its side effects.
	Do struct{ Value Expr }

	// MarkDistinct forces the query to return distinct rows.
	MarkDistinct struct{}
)

// Implicit references an implicit parameter of a member.
type Implicit uint8

// List of implicit parameters.
const (
	Root Implicit = iota + 1
	Query
	Builder
)

type (
	// Attr is the named attribute of the query root.
	Attr struct{ Name string }

	// Operand references a declared parameter. Spread expands a variadic
	// parameter when passed to a sibling member.
	Operand struct {
		Name   string
		Spread bool
	}

	// Call invokes a primitive criteria operation of the builder.
	Call struct {
		Method string
		Args   []Expr
	}

	// In tests the membership of X in the values of a slice operand.
	In struct {
		X      Expr
		Values Operand
	}

	// Not negates a predicate.
	Not struct{ X Expr }

	// Pattern is a case-insensitive LIKE pattern built from a string operand.
	// The operand is trimmed and lower-cased, then wrapped with wildcards.
	Pattern struct {
		Operand        string
		Prefix, Suffix bool
	}

	// Relation joins or fetches a related attribute of the root.
	Relation struct {
		Attr   string
		Type   JoinType
		Fetch  bool
		Target *field.TypeInfo
	}

	// CallMember invokes a sibling member of the same module.
	CallMember struct {
		Member *Member
		Args   []Expr
	}

	// Closure is a specification function literal receiving the root,
	// the query and the builder.
	Closure struct{ Body []Stmt }

	// Nil is the absent predicate.
	Nil struct{}
)

func (Return) stmt()       {}
func (Do) stmt()           {}
func (MarkDistinct) stmt() {}

func (Implicit) expr()   {}
func (Attr) expr()       {}
func (Operand) expr()    {}
func (Call) expr()       {}
func (In) expr()         {}
func (Not) expr()        {}
func (Pattern) expr()    {}
func (Relation) expr()   {}
func (CallMember) expr() {}
func (Closure) expr()    {}
func (Nil) expr()        {}
