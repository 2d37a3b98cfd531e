// Package criteriatest provides a criteria backend that renders predicates
// as SQL-like text. It is meant for testing specifications without a
// database.
package criteriatest

import (
	"fmt"
	"strings"

	"github.com/syssam/specgen/criteria"
)

// Pred is a rendered predicate.
type Pred string

// Not implements criteria.Predicate.
func (p Pred) Not() criteria.Predicate { return Pred("NOT (" + string(p) + ")") }

// String returns the predicate text.
func (p Pred) String() string { return string(p) }

// Expr is a rendered expression.
type Expr string

// In implements criteria.Expression.
func (e Expr) In(values ...any) criteria.Predicate {
	vs := make([]string, len(values))
	for i, v := range values {
		vs[i] = literal(v)
	}
	return Pred(fmt.Sprintf("%s IN (%s)", e, strings.Join(vs, ", ")))
}

// Path is a rendered query node.
type Path string

// Get implements criteria.Path.
func (p Path) Get(attribute string) criteria.Expression {
	return Expr(string(p) + "." + attribute)
}

// Join records a join or a fetch performed on a root.
type Join struct {
	Attribute string
	Type      criteria.JoinType
	Fetch     bool
}

// Root is the root of a query over E. It records the joins and fetches
// performed on it.
type Root[E any] struct {
	Alias string
	Joins []Join
}

// NewRoot returns a root with the given alias.
func NewRoot[E any](alias string) *Root[E] {
	return &Root[E]{Alias: alias}
}

// Get implements criteria.Path.
func (r *Root[E]) Get(attribute string) criteria.Expression {
	return Path(r.Alias).Get(attribute)
}

// Join implements criteria.From.
func (r *Root[E]) Join(attribute string, jt criteria.JoinType) criteria.Path {
	r.Joins = append(r.Joins, Join{Attribute: attribute, Type: jt})
	return Path(r.Alias + "_" + attribute)
}

// Fetch implements criteria.From.
func (r *Root[E]) Fetch(attribute string, jt criteria.JoinType) criteria.Path {
	r.Joins = append(r.Joins, Join{Attribute: attribute, Type: jt, Fetch: true})
	return Path(r.Alias + "_" + attribute)
}

// Query records the distinct flag.
type Query struct {
	IsDistinct bool
}

// Distinct implements criteria.Query.
func (q *Query) Distinct(distinct bool) criteria.Query {
	q.IsDistinct = distinct
	return q
}

// Builder renders predicates as text.
type Builder struct{}

var _ criteria.Builder = Builder{}

// IsNull implements criteria.Builder.
func (Builder) IsNull(x criteria.Expression) criteria.Predicate {
	return Pred(fmt.Sprintf("%s IS NULL", x))
}

// Equal implements criteria.Builder.
func (Builder) Equal(x criteria.Expression, y any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s = %s", x, literal(y)))
}

// Like implements criteria.Builder.
func (Builder) Like(x criteria.Expression, pattern string) criteria.Predicate {
	return Pred(fmt.Sprintf("%s LIKE %s", x, literal(pattern)))
}

// Lower implements criteria.Builder.
func (Builder) Lower(x criteria.Expression) criteria.Expression {
	return Expr(fmt.Sprintf("LOWER(%s)", x))
}

// Trim implements criteria.Builder.
func (Builder) Trim(x criteria.Expression) criteria.Expression {
	return Expr(fmt.Sprintf("TRIM(%s)", x))
}

// GreaterThan implements criteria.Builder.
func (Builder) GreaterThan(x criteria.Expression, y any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s > %s", x, literal(y)))
}

// GreaterThanOrEqualTo implements criteria.Builder.
func (Builder) GreaterThanOrEqualTo(x criteria.Expression, y any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s >= %s", x, literal(y)))
}

// LessThan implements criteria.Builder.
func (Builder) LessThan(x criteria.Expression, y any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s < %s", x, literal(y)))
}

// LessThanOrEqualTo implements criteria.Builder.
func (Builder) LessThanOrEqualTo(x criteria.Expression, y any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s <= %s", x, literal(y)))
}

// Between implements criteria.Builder.
func (Builder) Between(x criteria.Expression, lo, hi any) criteria.Predicate {
	return Pred(fmt.Sprintf("%s BETWEEN %s AND %s", x, literal(lo), literal(hi)))
}

// IsTrue implements criteria.Builder.
func (Builder) IsTrue(x criteria.Expression) criteria.Predicate {
	return Pred(fmt.Sprintf("%s IS TRUE", x))
}

// IsEmpty implements criteria.Builder.
func (Builder) IsEmpty(collection criteria.Expression) criteria.Predicate {
	return Pred(fmt.Sprintf("%s IS EMPTY", collection))
}

// IsMember implements criteria.Builder.
func (Builder) IsMember(elem any, collection criteria.Expression) criteria.Predicate {
	return Pred(fmt.Sprintf("%s MEMBER OF %s", literal(elem), collection))
}

// And implements criteria.Builder.
func (Builder) And(predicates ...criteria.Predicate) criteria.Predicate {
	return join(" AND ", predicates)
}

// Or implements criteria.Builder.
func (Builder) Or(predicates ...criteria.Predicate) criteria.Predicate {
	return join(" OR ", predicates)
}

func join(sep string, predicates []criteria.Predicate) Pred {
	ps := make([]string, len(predicates))
	for i, p := range predicates {
		ps[i] = fmt.Sprint(p)
	}
	return Pred("(" + strings.Join(ps, sep) + ")")
}

func literal(v any) string {
	switch v := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case fmt.Stringer:
		return "'" + v.String() + "'"
	default:
		return fmt.Sprint(v)
	}
}
