package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// suffixes holds the name suffix of each filtering operation and of its
// negated twin. Operations without a negated twin leave it empty.
var suffixes = map[Op][2]string{
	IsNull:         {"IsNull", "IsNotNull"},
	Equal:          {"Eq", "NotEq"},
	InVarargs:      {"In", "NotIn"},
	InCollection:   {"InCollection", "NotInCollection"},
	Like:           {"Like", "NotLike"},
	StartsWith:     {"StartsWith"},
	EndsWith:       {"EndsWith"},
	GreaterThan:    {"GreaterThan"},
	GreaterOrEqual: {"GreaterThanOrEqualTo"},
	LessThan:       {"LessThan"},
	LessOrEqual:    {"LessThanOrEqualTo"},
	Between:        {"Between", "NotBetween"},
	IsEmpty:        {"IsEmpty", "IsNotEmpty"},
}

// temporalSuffixes alias the range operations of temporal fields.
var temporalSuffixes = map[Op]string{
	GreaterThan:    "After",
	GreaterOrEqual: "AfterOrAt",
	LessThan:       "Before",
	LessOrEqual:    "BeforeOrAt",
}

// Name returns the name of the member generated for the given field and
// operation. Names are pure functions of their inputs.
func Name(f *Field, op Op) string {
	return name(f.Name, f.Category, op, false)
}

// NegatedName returns the name of the negated twin of an operation.
// It returns an empty string for operations that have no negated twin.
func NegatedName(f *Field, op Op) string {
	if !op.Negatable() {
		return ""
	}
	return name(f.Name, f.Category, op, true)
}

func name(f string, c Category, op Op, negated bool) string {
	switch {
	case op == IsTrue:
		if negated {
			return negateBoolean(f)
		}
		return f
	case op == IsMember:
		if negated {
			return "isNot" + exported(f) + "Member"
		}
		return "is" + exported(f) + "Member"
	case op.Join():
		return op.JoinType().String() + "Join" + exported(f)
	case op.Fetch():
		return op.JoinType().String() + "Fetch" + exported(f)
	}
	if c == Temporal && !negated {
		if s, ok := temporalSuffixes[op]; ok {
			return f + s
		}
	}
	s := suffixes[op]
	if negated {
		return f + s[1]
	}
	return f + s[0]
}

// negateBoolean derives the negated name of a boolean member from the
// prefix of the field name: isX becomes isNotX, hasX becomes hasNoX and
// other names are prefixed with "not".
func negateBoolean(f string) string {
	for _, p := range [...]struct{ prefix, neg string }{
		{"is", "isNot"},
		{"has", "hasNo"},
	} {
		if rest, ok := strings.CutPrefix(f, p.prefix); ok && rest != "" {
			return p.neg + exported(rest)
		}
	}
	return "not" + exported(f)
}

// exported returns s with its first letter in upper case.
func exported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// unexported returns s with its first letter in lower case.
func unexported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
