package gen

import (
	"strings"

	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/schema/field"
)

// Field is an entity field annotated with its category.
// It is produced once by Classify and never mutated.
type Field struct {
	*load.Field
	Category  Category
	Nullable  bool
	Primitive bool
}

// Operations returns the operations generated for the field.
func (f *Field) Operations() []Op {
	return OperationsFor(f.Category, f.Nullable, f.Primitive)
}

// Type returns the declared type of the field.
func (f *Field) Type() *field.TypeInfo {
	if f.Info == nil {
		return &field.TypeInfo{Type: field.TypeOther}
	}
	return f.Info
}

// foreignSuffixes mark a field as referencing another entity.
// The Go initialisms are accepted next to the camel-case forms.
var foreignSuffixes = []string{"Id", "Uuid", "ID", "UUID"}

// Classify resolves the category of a field. It never fails: fields that
// match no rule fall back to the Object category.
//
// Collections take precedence over markers, the enum marker over the
// primary-id marker, and all three over the scalar type. The foreign-id
// suffix rule only applies to fields that none of the first three matched.
func Classify(fd *load.Field) *Field {
	f := &Field{Field: fd}
	info := f.Type()
	switch {
	case info.Collection():
		f.Category = Collection
		return f
	case fd.Markers.Has(field.MarkerEnumText):
		f.Category = Enum
		return f
	case fd.Markers.Has(field.MarkerPrimaryID):
		f.Category = PrimaryID
		return f
	}
	switch t := info.Type; {
	case t == field.TypeString:
		f.Category, f.Nullable = String, true
	case t == field.TypeRune:
		f.Category = Character
		f.Nullable, f.Primitive = info.Pointer, !info.Pointer
	case t.Numeric():
		f.Category = Numeric
		f.Nullable, f.Primitive = info.Pointer, !info.Pointer
	case t == field.TypeTime:
		f.Category, f.Nullable = Temporal, true
	case t == field.TypeBool:
		f.Category = Boolean
		f.Nullable, f.Primitive = info.Pointer, !info.Pointer
	}
	if hasForeignSuffix(fd.Name) {
		f.Category = ForeignID
		f.Nullable = !f.Primitive
	}
	if f.Category == CategoryInvalid {
		f.Category = Object
	}
	return f
}

func hasForeignSuffix(name string) bool {
	for _, s := range foreignSuffixes {
		if len(name) > len(s) && strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
