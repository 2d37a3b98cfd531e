package gen

import (
	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/schema/field"
)

const modelPkg = "example.com/app/model"

// Shorthands for common field types.
var (
	typeString    = &field.TypeInfo{Type: field.TypeString, Ident: "string"}
	typeRune      = &field.TypeInfo{Type: field.TypeRune, Ident: "rune"}
	typeInt       = &field.TypeInfo{Type: field.TypeInt, Ident: "int"}
	typeInt64     = &field.TypeInfo{Type: field.TypeInt64, Ident: "int64"}
	typeFloat64   = &field.TypeInfo{Type: field.TypeFloat64, Ident: "float64"}
	typeBool      = &field.TypeInfo{Type: field.TypeBool, Ident: "bool"}
	typeTime      = &field.TypeInfo{Type: field.TypeTime, Ident: "time.Time", PkgPath: "time"}
	typeStatus    = &field.TypeInfo{Type: field.TypeOther, Ident: "model.Status", PkgPath: modelPkg}
	typeTag       = &field.TypeInfo{Type: field.TypeOther, Ident: "model.Tag", PkgPath: modelPkg}
	typeBytes     = &field.TypeInfo{Type: field.TypeOther, Ident: "[]byte"}
	typeStringMap = &field.TypeInfo{Type: field.TypeOther, Ident: "map[string]string"}
)

// ptr returns a pointer variant of the given type.
func ptr(t *field.TypeInfo) *field.TypeInfo {
	c := *t
	c.Pointer = true
	return &c
}

// sliceOf returns a slice collection of the given element type.
func sliceOf(elem *field.TypeInfo) *field.TypeInfo {
	return &field.TypeInfo{Type: field.TypeCollection, Ident: "[]" + elem.String(), Elem: elem}
}

// setOf returns a set collection of the given element type.
func setOf(elem *field.TypeInfo) *field.TypeInfo {
	return &field.TypeInfo{Type: field.TypeCollection, Ident: "map[" + elem.String() + "]struct{}", Set: true, Elem: elem}
}

// createTestField creates a field descriptor for testing.
func createTestField(name string, info *field.TypeInfo, markers ...field.Marker) *load.Field {
	return &load.Field{Name: name, Info: info, Markers: markers}
}

// createTestEntity creates an entity with the given fields.
func createTestEntity(name string, fields ...*load.Field) *load.Entity {
	return &load.Entity{
		Name:    name,
		Package: "model",
		PkgPath: modelPkg,
		Fields:  fields,
	}
}

// memberNames returns the logical names of the members of the given kind.
func memberNames(members []*Member, kind MemberKind) []string {
	var names []string
	for _, m := range members {
		if m.Kind == kind {
			names = append(names, m.Name)
		}
	}
	return names
}
