package gen

import (
	"github.com/go-openapi/inflect"

	"github.com/syssam/specgen/compiler/load"
)

// Module is the ordered set of members generated for one entity.
type Module struct {
	Entity  *load.Entity
	Fields  []*Field
	Members []*Member
}

// BuildModule classifies the fields of an entity and synthesizes their
// members, preserving field order and operation order. Generation of the
// whole entity fails on the first synthesis error; no partial module is
// returned.
func BuildModule(e *load.Entity) (*Module, error) {
	m := &Module{Entity: e}
	for _, fd := range e.Fields {
		f := Classify(fd)
		m.Fields = append(m.Fields, f)
		for _, op := range f.Operations() {
			members, err := Synthesize(e.Name, f, op)
			if err != nil {
				return nil, err
			}
			m.Members = append(m.Members, members...)
		}
	}
	return m, nil
}

// Name returns the entity name.
func (m *Module) Name() string { return m.Entity.Name }

// Receiver returns the name of the unexported namespace type holding the
// generated members (e.g. "userSpec").
func (m *Module) Receiver() string { return unexported(m.Entity.Name) + "Spec" }

// Var returns the name of the exported namespace variable (e.g. "UserSpec").
func (m *Module) Var() string { return exported(m.Entity.Name) + "Spec" }

// Filename returns the name of the generated file (e.g. "user_profile_spec.go").
func (m *Module) Filename() string { return Filename(m.Entity) }

// Filename returns the name of the file generated for the given entity.
func Filename(e *load.Entity) string { return inflect.Underscore(e.Name) + load.SpecFileSuffix }

// Specifications returns the specification factories of the module.
func (m *Module) Specifications() []*Member {
	var members []*Member
	for _, mb := range m.Members {
		if mb.Kind == KindSpecification {
			members = append(members, mb)
		}
	}
	return members
}
