// Package criteria defines the query criteria contract targeted by the code
// generated by specgen.
//
// The package only declares interfaces: an adapter for a concrete query
// backend implements Builder, Query and From, and generated specifications
// compose on top of them:
//
//	spec := model.UserSpec.EmailLike("@example.com").
//		And(model.UserSpec.AgeBetween(18, 65)).
//		And(criteria.Not(model.UserSpec.IsActive()))
//	pred := spec.ToPredicate(root, query, cb)
//
// A nil Predicate stands for "no restriction" and is absorbed by the
// logical combinators.
package criteria

// Predicate is a boolean condition of a query.
type Predicate interface {
	// Not returns the negation of the predicate.
	Not() Predicate
}

// Expression is a value expression of a query, such as an attribute path.
type Expression interface {
	// In returns a predicate testing the membership of the expression in
	// the given values.
	In(values ...any) Predicate
}

// Query is the query under construction.
type Query interface {
	// Distinct sets whether duplicate rows are removed from the result.
	Distinct(distinct bool) Query
}

// JoinType is the type of a relation join.
type JoinType uint8

// List of join types.
const (
	Inner JoinType = iota + 1
	Left
	Right
)

// String returns the SQL keyword of the join type.
func (j JoinType) String() string {
	switch j {
	case Inner:
		return "INNER"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "INVALID"
	}
}

// Path is a node of a query that exposes named attributes.
type Path interface {
	// Get returns the expression of the named attribute.
	Get(attribute string) Expression
}

// From is the root of a query over the entity type E.
type From[E any] interface {
	Path
	// Join joins the named relation attribute.
	Join(attribute string, jt JoinType) Path
	// Fetch fetches the named relation attribute along with the root.
	Fetch(attribute string, jt JoinType) Path
}

// Builder constructs predicates and expressions.
type Builder interface {
	IsNull(x Expression) Predicate
	Equal(x Expression, y any) Predicate
	Like(x Expression, pattern string) Predicate
	Lower(x Expression) Expression
	Trim(x Expression) Expression
	GreaterThan(x Expression, y any) Predicate
	GreaterThanOrEqualTo(x Expression, y any) Predicate
	LessThan(x Expression, y any) Predicate
	LessThanOrEqualTo(x Expression, y any) Predicate
	Between(x Expression, lo, hi any) Predicate
	IsTrue(x Expression) Predicate
	IsEmpty(collection Expression) Predicate
	IsMember(elem any, collection Expression) Predicate
	And(predicates ...Predicate) Predicate
	Or(predicates ...Predicate) Predicate
}

// Join is a typed join from the entity Z to the related entity X.
type Join[Z, X any] struct {
	Path
	Attribute string
	Type      JoinType
}

// Fetch is a typed fetch from the entity Z to the related entity X.
type Fetch[Z, X any] struct {
	Path
	Attribute string
	Type      JoinType
}

// JoinAs joins the named relation of root and types it with the related
// entity X. Z cannot be inferred from an interface-typed root, so callers
// holding a From[Z] spell out both type arguments.
func JoinAs[X, Z any](root From[Z], attribute string, jt JoinType) Join[Z, X] {
	return Join[Z, X]{Path: root.Join(attribute, jt), Attribute: attribute, Type: jt}
}

// FetchAs fetches the named relation of root and types it with the related
// entity X.
func FetchAs[X, Z any](root From[Z], attribute string, jt JoinType) Fetch[Z, X] {
	return Fetch[Z, X]{Path: root.Fetch(attribute, jt), Attribute: attribute, Type: jt}
}

// Values converts a typed slice into the untyped values accepted by
// Expression.In.
func Values[T any](values []T) []any {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return vs
}
