package gen

import "fmt"

// cond restricts a rule to some fields of a category.
type cond uint8

const (
	always cond = iota
	ifNullable
	unlessPrimitive
)

// rule is a single entry of the operation table.
type rule struct {
	op   Op
	cond cond
}

func (r rule) holds(nullable, primitive bool) bool {
	switch r.cond {
	case ifNullable:
		return nullable
	case unlessPrimitive:
		return !primitive
	default:
		return true
	}
}

var (
	idRules = []rule{
		{op: Equal},
		{op: InVarargs},
		{op: InCollection, cond: unlessPrimitive},
	}
	scalarRules = []rule{
		{op: IsNull, cond: ifNullable},
		{op: Equal},
		{op: InVarargs},
		{op: InCollection, cond: unlessPrimitive},
	}
	relationRules = []rule{
		{op: IsEmpty},
		{op: IsMember},
		{op: JoinLeft},
		{op: JoinInner},
		{op: JoinRight},
		{op: FetchLeft},
		{op: FetchInner},
		{op: FetchRight},
	}
	stringRules = []rule{
		{op: IsNull, cond: ifNullable},
		{op: Equal},
		{op: InVarargs},
		{op: Like},
		{op: StartsWith},
		{op: EndsWith},
		{op: InCollection, cond: unlessPrimitive},
	}
	numericRules = []rule{
		{op: IsNull, cond: ifNullable},
		{op: Equal},
		{op: InVarargs},
		{op: GreaterThan},
		{op: GreaterOrEqual},
		{op: LessThan},
		{op: LessOrEqual},
		{op: Between},
		{op: InCollection, cond: unlessPrimitive},
	}
	temporalRules = []rule{
		{op: IsNull, cond: ifNullable},
		{op: Equal},
		{op: GreaterThan},
		{op: GreaterOrEqual},
		{op: LessThan},
		{op: LessOrEqual},
		{op: Between},
	}
	booleanRules = []rule{{op: IsTrue}}
	objectRules  = []rule{{op: IsNull}}
)

// rulesOf returns the operation table entry of a category.
// The switch is exhaustive and panics on unknown categories.
func rulesOf(c Category) []rule {
	switch c {
	case PrimaryID, Enum:
		return idRules
	case ForeignID, Character:
		return scalarRules
	case Collection:
		return relationRules
	case String:
		return stringRules
	case Numeric:
		return numericRules
	case Temporal:
		return temporalRules
	case Boolean:
		return booleanRules
	case Object:
		return objectRules
	default:
		panic(fmt.Sprintf("gen: no operation rules for category %s", c))
	}
}

// OperationsFor returns the ordered operations generated for a field of the
// given category and flags. Negated twins are implied by Op.Negatable.
func OperationsFor(c Category, nullable, primitive bool) []Op {
	rules := rulesOf(c)
	ops := make([]Op, 0, len(rules))
	for _, r := range rules {
		if r.holds(nullable, primitive) {
			ops = append(ops, r.op)
		}
	}
	return ops
}
