package gen

import (
	"fmt"

	"github.com/syssam/specgen/schema/field"
)

// Synthesize returns the members generated for one operation of a field of
// the given entity. Filtering operations yield a predicate and its
// specification, followed by the negated pair when the operation has one.
// Join operations yield a single accessor, and fetch operations yield the
// accessor, a fetch predicate and a specification.
//
// Collections whose element type cannot be referenced by name, and operands
// of unnamed types, are rejected with a SchemaError.
func Synthesize(entity string, f *Field, op Op) ([]*Member, error) {
	switch {
	case op.Join():
		target, err := relationTarget(entity, f)
		if err != nil {
			return nil, err
		}
		return []*Member{joinAccessor(f, op, target)}, nil
	case op.Fetch():
		target, err := relationTarget(entity, f)
		if err != nil {
			return nil, err
		}
		return fetchMembers(f, op, target), nil
	}
	params, err := operands(entity, f, op)
	if err != nil {
		return nil, err
	}
	members := filterPair(f, op, params, false)
	if op.Negatable() {
		members = append(members, filterPair(f, op, params, true)...)
	}
	return members, nil
}

// filterPair builds a filtering predicate and the specification calling it.
func filterPair(f *Field, op Op, params []*Param, negated bool) []*Member {
	n := Name(f, op)
	if negated {
		n = NegatedName(f, op)
	}
	cond := condition(f, op, params)
	if negated {
		cond = Not{X: cond}
	}
	pred := &Member{
		Kind:    KindPredicate,
		Name:    n,
		Field:   f,
		Op:      op,
		Negated: negated,
		Context: BuilderContext,
		Params:  params,
		Body:    []Stmt{Return{Value: cond}},
	}
	return []*Member{pred, specification(pred, Builder)}
}

// specification returns the specification factory wrapping a predicate.
// It declares the same operands and forwards them to the predicate along
// with the root and the given implicit context.
func specification(pred *Member, ctx Implicit) *Member {
	args := []Expr{Root, ctx}
	for _, p := range pred.Params {
		args = append(args, Operand{Name: p.Name, Spread: p.Form == Variadic})
	}
	return &Member{
		Kind:    KindSpecification,
		Name:    pred.Name,
		Field:   pred.Field,
		Op:      pred.Op,
		Negated: pred.Negated,
		Params:  pred.Params,
		Body: []Stmt{
			Return{Value: Closure{Body: []Stmt{
				Return{Value: CallMember{Member: pred, Args: args}},
			}}},
		},
	}
}

// operands returns the declared parameters of a filtering operation.
func operands(entity string, f *Field, op Op) ([]*Param, error) {
	switch op {
	case IsNull, IsTrue, IsEmpty:
		return nil, nil
	case IsMember:
		elem, err := relationElem(entity, f)
		if err != nil {
			return nil, err
		}
		return []*Param{{Name: "element", Type: elem}}, nil
	}
	typ := f.Type()
	if !typ.Named() {
		return nil, NewSchemaError(entity, f.Name, fmt.Sprintf("operand type %s of operation %s cannot be referenced by name", typ, op), nil)
	}
	typ = typ.Base()
	switch op {
	case InVarargs:
		return []*Param{{Name: "elements", Type: typ, Form: Variadic}}, nil
	case InCollection:
		return []*Param{{Name: "collection", Type: typ, Form: Slice}}, nil
	case Between:
		return []*Param{
			{Name: f.Name + "From", Type: typ},
			{Name: f.Name + "To", Type: typ},
		}, nil
	default:
		return []*Param{{Name: f.Name, Type: typ}}, nil
	}
}

// condition returns the predicate expression of a filtering operation.
func condition(f *Field, op Op, params []*Param) Expr {
	attr := Attr{Name: f.Name}
	operand := func(i int) Operand { return Operand{Name: params[i].Name} }
	switch op {
	case IsNull, IsTrue, IsEmpty:
		return Call{Method: op.String(), Args: []Expr{attr}}
	case Equal:
		return Call{Method: "Equal", Args: []Expr{attr, operand(0)}}
	case InVarargs, InCollection:
		return In{X: attr, Values: operand(0)}
	case Like:
		return likeCall(attr, Pattern{Operand: params[0].Name, Prefix: true, Suffix: true})
	case StartsWith:
		return likeCall(attr, Pattern{Operand: params[0].Name, Suffix: true})
	case EndsWith:
		return likeCall(attr, Pattern{Operand: params[0].Name, Prefix: true})
	case GreaterThan:
		return Call{Method: "GreaterThan", Args: []Expr{attr, operand(0)}}
	case GreaterOrEqual:
		return Call{Method: "GreaterThanOrEqualTo", Args: []Expr{attr, operand(0)}}
	case LessThan:
		return Call{Method: "LessThan", Args: []Expr{attr, operand(0)}}
	case LessOrEqual:
		return Call{Method: "LessThanOrEqualTo", Args: []Expr{attr, operand(0)}}
	case Between:
		return Call{Method: "Between", Args: []Expr{attr, operand(0), operand(1)}}
	case IsMember:
		return Call{Method: "IsMember", Args: []Expr{operand(0), attr}}
	default:
		panic(fmt.Sprintf("gen: unexpected filtering operation %s", op))
	}
}

// likeCall matches the trimmed lower-cased attribute against a pattern.
func likeCall(attr Attr, p Pattern) Call {
	lowered := Call{Method: "Lower", Args: []Expr{
		Call{Method: "Trim", Args: []Expr{attr}},
	}}
	return Call{Method: "Like", Args: []Expr{lowered, p}}
}

func joinAccessor(f *Field, op Op, target *field.TypeInfo) *Member {
	return &Member{
		Kind:   KindJoinAccessor,
		Name:   Name(f, op),
		Field:  f,
		Op:     op,
		Target: target,
		Body: []Stmt{
			Return{Value: Relation{Attr: f.Name, Type: op.JoinType(), Target: target}},
		},
	}
}

// fetchMembers returns the fetch accessor of a relation, the predicate that
// performs the fetch and forces distinct rows, and its specification.
func fetchMembers(f *Field, op Op, target *field.TypeInfo) []*Member {
	n := Name(f, op)
	accessor := &Member{
		Kind:   KindFetchAccessor,
		Name:   n,
		Field:  f,
		Op:     op,
		Target: target,
		Body: []Stmt{
			Return{Value: Relation{Attr: f.Name, Type: op.JoinType(), Fetch: true, Target: target}},
		},
	}
	pred := &Member{
		Kind:    KindPredicate,
		Name:    n,
		Field:   f,
		Op:      op,
		Context: QueryContext,
		Body: []Stmt{
			Do{Value: CallMember{Member: accessor, Args: []Expr{Root}}},
			MarkDistinct{},
			Return{Value: Nil{}},
		},
	}
	return []*Member{accessor, pred, specification(pred, Query)}
}

// relationElem returns the element type of a collection field, as declared.
func relationElem(entity string, f *Field) (*field.TypeInfo, error) {
	elem := f.Type().Elem
	switch {
	case elem == nil:
		return nil, NewSchemaError(entity, f.Name, "collection has no element type", nil)
	case elem.Collection():
		return nil, NewSchemaError(entity, f.Name, fmt.Sprintf("nested collection element %s is not supported", elem), nil)
	case !elem.Named(), elem.Package() == "":
		return nil, NewSchemaError(entity, f.Name, fmt.Sprintf("element type %s must be a named type with a package path", elem), nil)
	}
	return elem, nil
}

// relationTarget returns the related type of a collection field, which is
// its element type without pointer indirection.
func relationTarget(entity string, f *Field) (*field.TypeInfo, error) {
	elem, err := relationElem(entity, f)
	if err != nil {
		return nil, err
	}
	return elem.Base(), nil
}
