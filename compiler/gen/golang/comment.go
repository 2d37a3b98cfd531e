package golang

import (
	"fmt"

	"github.com/syssam/specgen/compiler/gen"
)

// doc returns the doc comment of a generated member.
func doc(m *gen.Module, mb *gen.Member) string {
	name := mb.GoName()
	switch mb.Kind {
	case gen.KindJoinAccessor:
		return fmt.Sprintf("%s joins the %s relation of %s with %s join.", name, mb.Field.Name, m.Name(), article(mb.Op.JoinType()))
	case gen.KindFetchAccessor:
		return fmt.Sprintf("%s fetches the %s relation of %s with %s join.", name, mb.Field.Name, m.Name(), article(mb.Op.JoinType()))
	}
	if mb.Op.Fetch() {
		if mb.Kind == gen.KindPredicate {
			return fmt.Sprintf("%s fetches the %s relation and marks the query as distinct. It returns a nil predicate.", name, mb.Field.Name)
		}
		return fmt.Sprintf("%s returns a specification loading the %s relation of %s without filtering.", name, mb.Field.Name, m.Name())
	}
	cond := condition(mb)
	if mb.Kind == gen.KindPredicate {
		return fmt.Sprintf("%s returns a predicate testing that %s.", name, cond)
	}
	return fmt.Sprintf("%s returns a specification of %s entities where %s.", name, m.Name(), cond)
}

// article prefixes the join type with its indefinite article.
func article(j gen.JoinType) string {
	if j == gen.InnerJoin {
		return "an " + j.String()
	}
	return "a " + j.String()
}

// condition describes the condition tested by a filtering member.
func condition(mb *gen.Member) string {
	f := mb.Field.Name
	temporal := mb.Field.Category == gen.Temporal
	not := func(pos, neg string) string {
		if mb.Negated {
			return neg
		}
		return pos
	}
	switch mb.Op {
	case gen.IsNull:
		return f + not(" is null", " is not null")
	case gen.Equal:
		return f + not(" equals the given value", " does not equal the given value")
	case gen.InVarargs, gen.InCollection:
		return f + not(" is one of the given values", " is none of the given values")
	case gen.Like:
		return f + not(" contains the given text", " does not contain the given text") + ", ignoring case and surrounding spaces"
	case gen.StartsWith:
		return f + " starts with the given text, ignoring case and surrounding spaces"
	case gen.EndsWith:
		return f + " ends with the given text, ignoring case and surrounding spaces"
	case gen.GreaterThan:
		if temporal {
			return f + " is after the given time"
		}
		return f + " is greater than the given value"
	case gen.GreaterOrEqual:
		if temporal {
			return f + " is at or after the given time"
		}
		return f + " is greater than or equal to the given value"
	case gen.LessThan:
		if temporal {
			return f + " is before the given time"
		}
		return f + " is less than the given value"
	case gen.LessOrEqual:
		if temporal {
			return f + " is at or before the given time"
		}
		return f + " is less than or equal to the given value"
	case gen.Between:
		return f + not(" is between the given bounds", " is not between the given bounds")
	case gen.IsTrue:
		return f + not(" is true", " is not true")
	case gen.IsEmpty:
		return f + not(" is empty", " is not empty")
	case gen.IsMember:
		return "the given element is" + not(" ", " not ") + "a member of " + f
	default:
		return f + " matches " + mb.Op.String()
	}
}
