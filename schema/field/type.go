package field

import (
	"fmt"
	"go/token"
	"strings"
)

// A Type represents a field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeString
	TypeRune
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeCollection
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:    "invalid",
	TypeBool:       "bool",
	TypeTime:       "time.Time",
	TypeString:     "string",
	TypeRune:       "rune",
	TypeInt8:       "int8",
	TypeInt16:      "int16",
	TypeInt32:      "int32",
	TypeInt:        "int",
	TypeInt64:      "int64",
	TypeUint8:      "uint8",
	TypeUint16:     "uint16",
	TypeUint32:     "uint32",
	TypeUint:       "uint",
	TypeUint64:     "uint64",
	TypeFloat32:    "float32",
	TypeFloat64:    "float64",
	TypeCollection: "collection",
	TypeOther:      "other",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t < TypeCollection
}

// Valid reports if the given type if known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Type) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range typeNames {
		if name == s && Type(i).Valid() {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("field: unknown type %q", s)
}

// TypeInfo holds the information regarding field type.
// Used by the code generator to classify fields and to render operand types.
type TypeInfo struct {
	Type    Type      `json:"type" yaml:"type"`
	Ident   string    `json:"ident,omitempty" yaml:"ident,omitempty"`
	PkgPath string    `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
	Pointer bool      `json:"pointer,omitempty" yaml:"pointer,omitempty"`
	Set     bool      `json:"set,omitempty" yaml:"set,omitempty"`
	Elem    *TypeInfo `json:"elem,omitempty" yaml:"elem,omitempty"`
}

// String returns the Go representation of the type, including the pointer.
func (t TypeInfo) String() string {
	ident := t.Ident
	if ident == "" {
		ident = t.Type.String()
	}
	if t.Pointer {
		return "*" + ident
	}
	return ident
}

// Numeric reports if the type is a numeric type.
func (t TypeInfo) Numeric() bool {
	return t.Type.Numeric()
}

// Collection reports if the type is a slice or a set of elements.
func (t TypeInfo) Collection() bool {
	return t.Type == TypeCollection
}

// Package returns the import path of the package declaring the type.
// Predeclared and composite types have no package.
func (t TypeInfo) Package() string {
	if t.PkgPath == "" && t.Type == TypeTime {
		return "time"
	}
	return t.PkgPath
}

// Name returns the unqualified name of the type.
// For example, "Tag" for "model.Tag" and "string" for "string".
func (t TypeInfo) Name() string {
	ident := t.Ident
	if ident == "" {
		ident = t.Type.String()
	}
	if t.Package() == "" {
		return ident
	}
	if i := strings.LastIndexByte(ident, '.'); i >= 0 {
		return ident[i+1:]
	}
	return ident
}

// Named reports if the type can be referenced by name, either as a
// predeclared identifier or as a package-qualified one. Composite literals
// (e.g. []int, map[string]any), instantiated generics and qualified names
// without a package path are not named.
func (t TypeInfo) Named() bool {
	if !token.IsIdentifier(t.Name()) {
		return false
	}
	return t.Package() != "" || !strings.Contains(t.Ident, ".")
}

// Base returns a copy of the type without the pointer indirection.
func (t TypeInfo) Base() *TypeInfo {
	t.Pointer = false
	return &t
}

// A Marker is a semantic tag attached to a field.
type Marker string

// List of recognized markers.
const (
	// MarkerPrimaryID marks the field as the entity primary identifier.
	MarkerPrimaryID Marker = "id"
	// MarkerEnumText marks the field as an enumeration stored by name.
	MarkerEnumText Marker = "enum"
)

// ParseMarker returns the marker for the given text.
func ParseMarker(s string) (Marker, error) {
	switch m := Marker(strings.TrimSpace(s)); m {
	case MarkerPrimaryID, MarkerEnumText:
		return m, nil
	default:
		return "", fmt.Errorf("field: unknown marker %q", s)
	}
}

// Markers is the set of markers observed on a field.
type Markers []Marker

// Has reports if the given marker is present.
func (ms Markers) Has(m Marker) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}
