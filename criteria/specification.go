package criteria

// Specification produces a predicate over the entity type E. A nil
// specification, or one returning a nil predicate, does not restrict the
// query.
type Specification[E any] func(root From[E], query Query, cb Builder) Predicate

// ToPredicate returns the predicate of the specification, or nil.
func (s Specification[E]) ToPredicate(root From[E], query Query, cb Builder) Predicate {
	if s == nil {
		return nil
	}
	return s(root, query, cb)
}

// And returns a specification satisfied when both s and other are.
func (s Specification[E]) And(other Specification[E]) Specification[E] {
	return AllOf(s, other)
}

// Or returns a specification satisfied when s or other is.
func (s Specification[E]) Or(other Specification[E]) Specification[E] {
	return AnyOf(s, other)
}

// Where returns s, or a specification without restriction if s is nil.
func Where[E any](s Specification[E]) Specification[E] {
	if s == nil {
		return func(From[E], Query, Builder) Predicate { return nil }
	}
	return s
}

// Not negates a specification. The negation of a specification without
// restriction is still without restriction.
func Not[E any](s Specification[E]) Specification[E] {
	return func(root From[E], query Query, cb Builder) Predicate {
		p := s.ToPredicate(root, query, cb)
		if p == nil {
			return nil
		}
		return p.Not()
	}
}

// AllOf returns the conjunction of the given specifications.
func AllOf[E any](specs ...Specification[E]) Specification[E] {
	return combine(specs, Builder.And)
}

// AnyOf returns the disjunction of the given specifications.
func AnyOf[E any](specs ...Specification[E]) Specification[E] {
	return combine(specs, Builder.Or)
}

// combine evaluates all specifications, drops the nil predicates and joins
// the remaining ones with op. A single remaining predicate is returned as is.
func combine[E any](specs []Specification[E], op func(Builder, ...Predicate) Predicate) Specification[E] {
	return func(root From[E], query Query, cb Builder) Predicate {
		var preds []Predicate
		for _, s := range specs {
			if p := s.ToPredicate(root, query, cb); p != nil {
				preds = append(preds, p)
			}
		}
		switch len(preds) {
		case 0:
			return nil
		case 1:
			return preds[0]
		default:
			return op(cb, preds...)
		}
	}
}
