// Package load discovers entity structs in Go packages and converts them
// into field descriptors for the code generator.
package load

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"

	"github.com/syssam/specgen/schema/field"
)

const (
	// Directive marks a struct declaration as an entity.
	//
	//	//specgen:entity
	//	type User struct { ... }
	Directive = "specgen:entity"
	// DefaultTag is the struct tag key holding field markers.
	DefaultTag = "specgen"
	// SpecFileSuffix is the file name suffix of generated spec files.
	SpecFileSuffix = "_spec.go"
)

// Config holds the configuration for loading entities from Go packages.
type Config struct {
	// Patterns are the package patterns to load (e.g. "./...").
	Patterns []string
	// Dir is the directory in which to run the build system. Defaults to
	// the current directory.
	Dir string
	// BuildFlags are forwarded to the build system (e.g. "-tags=dev").
	BuildFlags []string
	// Tag is the struct tag key holding field markers. Defaults to DefaultTag.
	Tag string
}

// Load loads the packages matched by the configured patterns and returns the
// entities they declare, in package and declaration order.
func (c *Config) Load(ctx context.Context) ([]*Entity, error) {
	if len(c.Patterns) == 0 {
		return nil, errors.New("load: no package patterns")
	}
	pkgs, err := packages.Load(&packages.Config{
		Context:    ctx,
		Dir:        c.Dir,
		BuildFlags: c.BuildFlags,
		ParseFile:  parseFile,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}, c.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	var (
		errs     []error
		entities []*Entity
	)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load %s: %w", strings.Join(c.Patterns, " "), errors.Join(errs...))
	}
	for _, pkg := range pkgs {
		found, err := c.entities(pkg)
		if err != nil {
			return nil, err
		}
		entities = append(entities, found...)
	}
	return entities, nil
}

// parseFile parses a package file for loading. Previously generated spec
// files are reduced to their package clause, so a stale or broken output
// never blocks its own regeneration.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if strings.HasSuffix(filename, SpecFileSuffix) {
		head, err := parser.ParseFile(fset, filename, src, parser.PackageClauseOnly|parser.ParseComments)
		if err == nil && ast.IsGenerated(head) {
			return head, nil
		}
	}
	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
}

// entities extracts the entities declared in the given package.
func (c *Config) entities(pkg *packages.Package) ([]*Entity, error) {
	var entities []*Entity
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if !hasDirective(doc) {
					continue
				}
				e, err := c.entity(pkg, ts, doc)
				if err != nil {
					return nil, err
				}
				entities = append(entities, e)
			}
		}
	}
	return entities, nil
}

func (c *Config) entity(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) (*Entity, error) {
	pos := pkg.Fset.Position(ts.Pos())
	if ts.TypeParams != nil && ts.TypeParams.NumFields() > 0 {
		return nil, fmt.Errorf("%s: generic entity %q is not supported", pos, ts.Name.Name)
	}
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: missing type information for %q", pos, ts.Name.Name)
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s: entity %q is not a struct", pos, ts.Name.Name)
	}
	e := &Entity{
		Name:    obj.Name(),
		Package: pkg.Name,
		PkgPath: pkg.PkgPath,
		Dir:     filepath.Dir(pos.Filename),
		Pos:     pos.String(),
		Comment: strings.TrimSpace(doc.Text()),
	}
	comments := fieldComments(ts)
	key := c.Tag
	if key == "" {
		key = DefaultTag
	}
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if v.Embedded() || !v.Exported() {
			continue
		}
		tag := reflect.StructTag(st.Tag(i))
		markers, skip, err := parseTag(tag.Get(key))
		if err != nil {
			return nil, fmt.Errorf("%s: field %s.%s: %w", pos, e.Name, v.Name(), err)
		}
		if skip {
			continue
		}
		e.Fields = append(e.Fields, &Field{
			Name:    fieldName(v.Name(), tag),
			GoName:  v.Name(),
			Info:    typeInfo(v.Type()),
			Markers: markers,
			Comment: comments[v.Name()],
		})
	}
	if err := e.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", pos, err)
	}
	return e, nil
}

// hasDirective reports if the comment group carries the entity directive.
// Directives are stripped by CommentGroup.Text, so the raw list is scanned.
func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(strings.TrimPrefix(c.Text, "//")) == Directive {
			return true
		}
	}
	return false
}

func fieldComments(ts *ast.TypeSpec) map[string]string {
	comments := make(map[string]string)
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return comments
	}
	for _, f := range st.Fields.List {
		text := f.Doc.Text()
		if text == "" {
			text = f.Comment.Text()
		}
		for _, n := range f.Names {
			comments[n.Name] = strings.TrimSpace(text)
		}
	}
	return comments
}

// parseTag parses the marker tag value. A value of "-" skips the field.
func parseTag(value string) (field.Markers, bool, error) {
	if value == "" {
		return nil, false, nil
	}
	if value == "-" {
		return nil, true, nil
	}
	var markers field.Markers
	for _, s := range strings.Split(value, ",") {
		m, err := field.ParseMarker(s)
		if err != nil {
			return nil, false, err
		}
		if !markers.Has(m) {
			markers = append(markers, m)
		}
	}
	return markers, false, nil
}

// fieldName returns the logical name of a field: the json name when it is a
// valid identifier, and the lower camel-case Go name otherwise.
func fieldName(goName string, tag reflect.StructTag) string {
	if name, _, _ := strings.Cut(tag.Get("json"), ","); name != "-" && token.IsIdentifier(name) {
		return name
	}
	return lowerCamel(goName)
}

// lowerCamel lowers the leading upper-case run of s, keeping the last letter
// of the run when it starts the next word ("URLPath" becomes "urlPath").
func lowerCamel(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n == len(r):
		return strings.ToLower(s)
	case n > 1 && unicode.IsLetter(r[n]):
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// typeInfo converts a Go type into its field descriptor.
func typeInfo(typ types.Type) *field.TypeInfo {
	info := &field.TypeInfo{}
	if p, ok := types.Unalias(typ).(*types.Pointer); ok {
		info.Pointer = true
		typ = p.Elem()
	}
	typ = types.Unalias(typ)
	info.Ident = types.TypeString(typ, qualifier)
	switch t := typ.(type) {
	case *types.Basic:
		info.Type = basicType(t)
	case *types.Named:
		info.Type = field.TypeOther
		if pkg := t.Obj().Pkg(); pkg != nil {
			info.PkgPath = pkg.Path()
			if info.PkgPath == "time" && t.Obj().Name() == "Time" {
				info.Type = field.TypeTime
			}
		}
	case *types.Slice:
		if b, ok := t.Elem().(*types.Basic); ok && b.Kind() == types.Byte {
			info.Type = field.TypeOther
			break
		}
		info.Type = field.TypeCollection
		info.Elem = typeInfo(t.Elem())
	case *types.Map:
		info.Type = field.TypeOther
		if isSetValue(t.Elem()) {
			info.Type = field.TypeCollection
			info.Set = true
			info.Elem = typeInfo(t.Key())
		}
	default:
		info.Type = field.TypeOther
	}
	return info
}

func basicType(t *types.Basic) field.Type {
	switch t.Kind() {
	case types.Bool:
		return field.TypeBool
	case types.String:
		return field.TypeString
	case types.Int8:
		return field.TypeInt8
	case types.Int16:
		return field.TypeInt16
	case types.Int32:
		if t.Name() == "rune" {
			return field.TypeRune
		}
		return field.TypeInt32
	case types.Int:
		return field.TypeInt
	case types.Int64:
		return field.TypeInt64
	case types.Uint8:
		return field.TypeUint8
	case types.Uint16:
		return field.TypeUint16
	case types.Uint32:
		return field.TypeUint32
	case types.Uint:
		return field.TypeUint
	case types.Uint64:
		return field.TypeUint64
	case types.Float32:
		return field.TypeFloat32
	case types.Float64:
		return field.TypeFloat64
	default:
		return field.TypeOther
	}
}

// isSetValue reports if a map value type makes the map a set.
func isSetValue(typ types.Type) bool {
	switch t := typ.Underlying().(type) {
	case *types.Struct:
		return t.NumFields() == 0
	case *types.Basic:
		return t.Kind() == types.Bool
	}
	return false
}

func qualifier(pkg *types.Package) string {
	return pkg.Name()
}
