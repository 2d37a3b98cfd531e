package gen

import "github.com/syssam/specgen/schema/field"

// Report describes the classification of an entity and the members
// generated for it. It is the output of "specgen describe".
type Report struct {
	Entity  string         `json:"entity" yaml:"entity"`
	PkgPath string         `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
	File    string         `json:"file" yaml:"file"`
	Fields  []*FieldReport `json:"fields" yaml:"fields"`
}

// FieldReport describes a classified field.
type FieldReport struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Markers    field.Markers  `json:"markers,omitempty" yaml:"markers,omitempty"`
	Category   Category       `json:"category" yaml:"category"`
	Nullable   bool           `json:"nullable" yaml:"nullable"`
	Primitive  bool           `json:"primitive" yaml:"primitive"`
	Operations []Op           `json:"operations" yaml:"operations"`
	Members    []MemberReport `json:"members" yaml:"members"`
}

// MemberReport describes a generated member.
type MemberReport struct {
	Name string     `json:"name" yaml:"name"`
	Kind MemberKind `json:"kind" yaml:"kind"`
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k MemberKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NewReport returns the report of a module.
func NewReport(m *Module) *Report {
	r := &Report{
		Entity:  m.Name(),
		PkgPath: m.Entity.PkgPath,
		File:    m.Filename(),
	}
	byField := make(map[*Field]*FieldReport, len(m.Fields))
	for _, f := range m.Fields {
		fr := &FieldReport{
			Name:       f.Name,
			Type:       f.Type().String(),
			Markers:    f.Markers,
			Category:   f.Category,
			Nullable:   f.Nullable,
			Primitive:  f.Primitive,
			Operations: f.Operations(),
		}
		byField[f] = fr
		r.Fields = append(r.Fields, fr)
	}
	for _, mb := range m.Members {
		if fr, ok := byField[mb.Field]; ok {
			fr.Members = append(fr.Members, MemberReport{Name: mb.GoName(), Kind: mb.Kind})
		}
	}
	return r
}
