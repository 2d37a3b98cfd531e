package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/specgen/compiler/gen"
)

// writer renders the members of one module into a file.
type writer struct {
	file   *jen.File
	module *gen.Module
}

// entityType returns the entity type of the module.
func (w *writer) entityType() jen.Code {
	e := w.module.Entity
	if e.PkgPath != "" {
		return jen.Qual(e.PkgPath, e.Name)
	}
	return jen.Id(e.Name)
}

// fromType returns criteria.From[E].
func (w *writer) fromType() jen.Code {
	return jen.Qual(criteriaPkg(), "From").Types(w.entityType())
}

// write declares the namespace type and variable, then the members in
// module order.
func (w *writer) write() error {
	m := w.module
	recv := m.Receiver()
	w.file.Commentf("%s groups the query specifications of %s.", recv, m.Name())
	w.file.Type().Id(recv).Struct()
	w.file.Commentf("%s is the entry point of the %s query specifications.", m.Var(), m.Name())
	w.file.Var().Id(m.Var()).Id(recv)
	for _, mb := range m.Members {
		if err := w.member(mb); err != nil {
			return fmt.Errorf("entity %s member %s: %w", m.Name(), mb.GoName(), err)
		}
	}
	return nil
}

// member renders a single member as a method of the namespace type.
func (w *writer) member(mb *gen.Member) error {
	params, err := w.params(mb)
	if err != nil {
		return err
	}
	result, err := w.result(mb)
	if err != nil {
		return err
	}
	body, err := w.stmts(mb.Body)
	if err != nil {
		return err
	}
	recv := jen.Id(w.module.Receiver())
	if callsSibling(mb.Body) {
		recv = jen.Id("s").Id(w.module.Receiver())
	}
	w.file.Comment(doc(w.module, mb))
	w.file.Func().Params(recv).Id(mb.GoName()).Params(params...).Add(result).Block(body...)
	return nil
}

// params returns the implicit parameters of the member followed by its
// declared operands.
func (w *writer) params(mb *gen.Member) ([]jen.Code, error) {
	var params []jen.Code
	switch mb.Kind {
	case gen.KindPredicate:
		params = append(params, jen.Id("root").Add(w.fromType()))
		switch mb.Context {
		case gen.BuilderContext:
			params = append(params, jen.Id("cb").Qual(criteriaPkg(), "Builder"))
		case gen.QueryContext:
			params = append(params, jen.Id("query").Qual(criteriaPkg(), "Query"))
		}
	case gen.KindJoinAccessor, gen.KindFetchAccessor:
		params = append(params, jen.Id("root").Add(w.fromType()))
	}
	for _, p := range mb.Params {
		typ, err := typeCode(p.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		param := jen.Id(paramName(p.Name))
		switch p.Form {
		case gen.Variadic:
			param.Op("...")
		case gen.Slice:
			param.Index()
		}
		params = append(params, param.Add(typ))
	}
	return params, nil
}

// result returns the result type of the member.
func (w *writer) result(mb *gen.Member) (jen.Code, error) {
	switch mb.Kind {
	case gen.KindPredicate:
		return jen.Qual(criteriaPkg(), "Predicate"), nil
	case gen.KindSpecification:
		return jen.Qual(criteriaPkg(), "Specification").Types(w.entityType()), nil
	case gen.KindJoinAccessor, gen.KindFetchAccessor:
		target, err := typeCode(mb.Target)
		if err != nil {
			return nil, fmt.Errorf("relation target: %w", err)
		}
		name := "Join"
		if mb.Kind == gen.KindFetchAccessor {
			name = "Fetch"
		}
		return jen.Qual(criteriaPkg(), name).Types(w.entityType(), target), nil
	default:
		return nil, fmt.Errorf("unexpected member kind %s", mb.Kind)
	}
}

func (w *writer) stmts(stmts []gen.Stmt) ([]jen.Code, error) {
	codes := make([]jen.Code, 0, len(stmts))
	for _, s := range stmts {
		var (
			c   jen.Code
			err error
		)
		switch s := s.(type) {
		case gen.Return:
			var v jen.Code
			if v, err = w.expr(s.Value); err == nil {
				c = jen.Return(v)
			}
		case gen.Do:
			c, err = w.expr(s.Value)
		case gen.MarkDistinct:
			c = jen.Id("query").Dot("Distinct").Call(jen.True())
		default:
			err = fmt.Errorf("unexpected statement %T", s)
		}
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

func (w *writer) exprs(exprs []gen.Expr) ([]jen.Code, error) {
	codes := make([]jen.Code, 0, len(exprs))
	for _, x := range exprs {
		c, err := w.expr(x)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

func (w *writer) expr(x gen.Expr) (jen.Code, error) {
	switch x := x.(type) {
	case gen.Implicit:
		switch x {
		case gen.Root:
			return jen.Id("root"), nil
		case gen.Query:
			return jen.Id("query"), nil
		case gen.Builder:
			return jen.Id("cb"), nil
		}
	case gen.Attr:
		return jen.Id("root").Dot("Get").Call(jen.Lit(x.Name)), nil
	case gen.Operand:
		op := jen.Id(paramName(x.Name))
		if x.Spread {
			op.Op("...")
		}
		return op, nil
	case gen.Call:
		args, err := w.exprs(x.Args)
		if err != nil {
			return nil, err
		}
		return jen.Id("cb").Dot(x.Method).Call(args...), nil
	case gen.In:
		target, err := w.expr(x.X)
		if err != nil {
			return nil, err
		}
		values := jen.Qual(criteriaPkg(), "Values").Call(jen.Id(paramName(x.Values.Name))).Op("...")
		return jen.Add(target).Dot("In").Call(values), nil
	case gen.Not:
		inner, err := w.expr(x.X)
		if err != nil {
			return nil, err
		}
		return jen.Add(inner).Dot("Not").Call(), nil
	case gen.Pattern:
		c := jen.Qual("strings", "ToLower").Call(
			jen.Qual("strings", "TrimSpace").Call(jen.Id(paramName(x.Operand))),
		)
		if x.Prefix {
			c = jen.Lit("%").Op("+").Add(c)
		}
		if x.Suffix {
			c = c.Op("+").Lit("%")
		}
		return c, nil
	case gen.Relation:
		target, err := typeCode(x.Target)
		if err != nil {
			return nil, fmt.Errorf("relation target: %w", err)
		}
		fn := "JoinAs"
		if x.Fetch {
			fn = "FetchAs"
		}
		return jen.Qual(criteriaPkg(), fn).Types(target, w.entityType()).Call(
			jen.Id("root"), jen.Lit(x.Attr), jen.Qual(criteriaPkg(), joinType(x.Type)),
		), nil
	case gen.CallMember:
		args, err := w.exprs(x.Args)
		if err != nil {
			return nil, err
		}
		return jen.Id("s").Dot(x.Member.GoName()).Call(args...), nil
	case gen.Closure:
		body, err := w.stmts(x.Body)
		if err != nil {
			return nil, err
		}
		return jen.Func().Params(
			jen.Id("root").Add(w.fromType()),
			jen.Id("query").Qual(criteriaPkg(), "Query"),
			jen.Id("cb").Qual(criteriaPkg(), "Builder"),
		).Qual(criteriaPkg(), "Predicate").Block(body...), nil
	case gen.Nil:
		return jen.Nil(), nil
	}
	return nil, fmt.Errorf("unexpected expression %T", x)
}

// joinType returns the criteria constant of a join type.
func joinType(j gen.JoinType) string {
	switch j {
	case gen.LeftJoin:
		return "Left"
	case gen.RightJoin:
		return "Right"
	default:
		return "Inner"
	}
}

// callsSibling reports if a body invokes another member through the
// receiver.
func callsSibling(stmts []gen.Stmt) bool {
	for _, s := range stmts {
		var x gen.Expr
		switch s := s.(type) {
		case gen.Return:
			x = s.Value
		case gen.Do:
			x = s.Value
		}
		switch x := x.(type) {
		case gen.CallMember:
			return true
		case gen.Closure:
			if callsSibling(x.Body) {
				return true
			}
		}
	}
	return false
}
