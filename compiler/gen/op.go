package gen

// Op represents a generated operation kind.
type Op uint8

// List of operation kinds.
const (
	OpInvalid Op = iota
	IsNull
	Equal
	InCollection
	InVarargs
	Like
	StartsWith
	EndsWith
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	Between
	IsTrue
	IsEmpty
	IsMember
	JoinLeft
	JoinInner
	JoinRight
	FetchLeft
	FetchInner
	FetchRight
	endOps
)

var opNames = [...]string{
	OpInvalid:      "Invalid",
	IsNull:         "IsNull",
	Equal:          "Equal",
	InCollection:   "InCollection",
	InVarargs:      "InVarargs",
	Like:           "Like",
	StartsWith:     "StartsWith",
	EndsWith:       "EndsWith",
	GreaterThan:    "GreaterThan",
	GreaterOrEqual: "GreaterOrEqual",
	LessThan:       "LessThan",
	LessOrEqual:    "LessOrEqual",
	Between:        "Between",
	IsTrue:         "IsTrue",
	IsEmpty:        "IsEmpty",
	IsMember:       "IsMember",
	JoinLeft:       "JoinLeft",
	JoinInner:      "JoinInner",
	JoinRight:      "JoinRight",
	FetchLeft:      "FetchLeft",
	FetchInner:     "FetchInner",
	FetchRight:     "FetchRight",
}

// String returns the name of the operation.
func (o Op) String() string {
	if o < endOps {
		return opNames[o]
	}
	return opNames[OpInvalid]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Negatable reports if the operation has a negated twin.
func (o Op) Negatable() bool {
	switch o {
	case IsNull, Equal, InCollection, InVarargs, Like, Between, IsTrue, IsEmpty, IsMember:
		return true
	default:
		return false
	}
}

// Join reports if the operation is a join accessor.
func (o Op) Join() bool { return o >= JoinLeft && o <= JoinRight }

// Fetch reports if the operation is a fetch accessor.
func (o Op) Fetch() bool { return o >= FetchLeft && o <= FetchRight }

// Relation reports if the operation is a join or a fetch accessor.
func (o Op) Relation() bool { return o.Join() || o.Fetch() }

// JoinType returns the join type of a relation operation.
func (o Op) JoinType() JoinType {
	switch o {
	case JoinLeft, FetchLeft:
		return LeftJoin
	case JoinInner, FetchInner:
		return InnerJoin
	case JoinRight, FetchRight:
		return RightJoin
	default:
		return 0
	}
}

// JoinType is the type of a relation join.
type JoinType uint8

// List of join types.
const (
	InnerJoin JoinType = iota + 1
	LeftJoin
	RightJoin
)

// String returns the lower-case name used as a member prefix.
func (j JoinType) String() string {
	switch j {
	case InnerJoin:
		return "inner"
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	default:
		return ""
	}
}
