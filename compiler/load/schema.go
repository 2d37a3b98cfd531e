package load

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/specgen/schema/field"
)

// Entity represents a struct that was discovered in a user package,
// or decoded from a descriptor file.
type Entity struct {
	Name    string   `json:"name" yaml:"name"`
	Package string   `json:"package,omitempty" yaml:"package,omitempty"`
	PkgPath string   `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
	Dir     string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	Pos     string   `json:"-" yaml:"-"`
	Fields  []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Field represents a single entity field. Fields are immutable once loaded.
type Field struct {
	Name    string          `json:"name" yaml:"name"`
	GoName  string          `json:"go_name,omitempty" yaml:"go_name,omitempty"`
	Info    *field.TypeInfo `json:"type,omitempty" yaml:"type,omitempty"`
	Markers field.Markers   `json:"markers,omitempty" yaml:"markers,omitempty"`
	Comment string          `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Field returns the entity field with the given name, or nil.
func (e *Entity) Field(name string) *Field {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// check validates the invariants the generator relies on.
func (e *Entity) check() error {
	switch {
	case e.Name == "":
		return fmt.Errorf("entity name is required")
	case !token.IsIdentifier(e.Name):
		return fmt.Errorf("entity name %q is not a valid identifier", e.Name)
	case e.Package == "":
		return fmt.Errorf("entity %q: package is required", e.Name)
	case !token.IsIdentifier(e.Package):
		return fmt.Errorf("entity %q: package %q is not a valid identifier", e.Name, e.Package)
	}
	seen := make(map[string]bool, len(e.Fields))
	for i, f := range e.Fields {
		switch {
		case f == nil:
			return fmt.Errorf("entity %q: field at index %d is null", e.Name, i)
		case f.Name == "":
			return fmt.Errorf("entity %q: field at index %d has no name", e.Name, i)
		case !token.IsIdentifier(f.Name):
			return fmt.Errorf("entity %q: field name %q is not a valid identifier", e.Name, f.Name)
		case !validType(f.Info):
			return fmt.Errorf("entity %q: field %q has no valid type", e.Name, f.Name)
		case seen[f.Name]:
			return fmt.Errorf("entity %q: duplicate field %q", e.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// validType reports whether t and its element types carry a known type.
// A missing collection element is left to synthesis, which reports it as
// a schema error.
func validType(t *field.TypeInfo) bool {
	for ; t != nil; t = t.Elem {
		if !t.Type.Valid() {
			return false
		}
		if t.Elem == nil {
			return true
		}
	}
	return false
}

// MarshalEntities encodes the given entities as JSON.
func MarshalEntities(entities []*Entity) ([]byte, error) {
	return json.MarshalIndent(entities, "", "  ")
}

// UnmarshalEntities decodes and validates the JSON-encoded entities.
func UnmarshalEntities(buf []byte) ([]*Entity, error) {
	var entities []*Entity
	if err := json.Unmarshal(buf, &entities); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}
	return checkAll(entities)
}

// EncodeMsgpack encodes the given entities as MessagePack, using the same
// field names as the JSON encoding.
func EncodeMsgpack(entities []*Entity) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(entities); err != nil {
		return nil, fmt.Errorf("encode entities: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeMsgpack decodes and validates MessagePack-encoded entities.
func DecodeMsgpack(buf []byte) ([]*Entity, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(buf))
	dec.SetCustomStructTag("json")
	var entities []*Entity
	if err := dec.Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	return checkAll(entities)
}

// ReadFile reads entity descriptors from a JSON, YAML or MessagePack file.
// The format is chosen by the file extension.
func ReadFile(path string) ([]*Entity, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return UnmarshalEntities(buf)
	case ".yaml", ".yml":
		var entities []*Entity
		if err := yaml.Unmarshal(buf, &entities); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", path, err)
		}
		return checkAll(entities)
	case ".msgpack", ".mpk":
		return DecodeMsgpack(buf)
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", ext)
	}
}

func checkAll(entities []*Entity) ([]*Entity, error) {
	for i, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("entity at index %d is null", i)
		}
		if err := e.check(); err != nil {
			return nil, err
		}
	}
	return entities, nil
}
