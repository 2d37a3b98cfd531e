package golang

import (
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/specgen/schema/field"
)

// criteriaPkg returns the import path of the criteria runtime.
func criteriaPkg() string {
	return "github.com/syssam/specgen/criteria"
}

// reservedParams are identifiers used by generated bodies. Operands with
// these names are renamed so they do not shadow them.
var reservedParams = map[string]struct{}{
	"root":     {},
	"query":    {},
	"cb":       {},
	"s":        {},
	"criteria": {},
	"strings":  {},
	"nil":      {},
	"true":     {},
	"false":    {},
	"iota":     {},
}

// paramName returns the Go name of an operand and ensures it doesn't
// conflict with Go keywords and the identifiers of generated bodies.
func paramName(name string) string {
	if _, ok := reservedParams[name]; ok || token.Lookup(name).IsKeyword() {
		return "_" + name
	}
	return name
}

// typeCode returns the Jennifer code of a named type.
func typeCode(t *field.TypeInfo) (jen.Code, error) {
	if t == nil || !t.Named() {
		return nil, fmt.Errorf("type %v cannot be referenced by name", t)
	}
	var c *jen.Statement
	if pkg := t.Package(); pkg != "" {
		c = jen.Qual(pkg, t.Name())
	} else {
		c = jen.Id(t.Name())
	}
	if t.Pointer {
		return jen.Op("*").Add(c), nil
	}
	return c, nil
}
