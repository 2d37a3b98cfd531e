package golang

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/schema/field"
)

const modelPkg = "example.com/app/model"

var (
	typeString = &field.TypeInfo{Type: field.TypeString, Ident: "string"}
	typeInt    = &field.TypeInfo{Type: field.TypeInt, Ident: "int"}
	typeBool   = &field.TypeInfo{Type: field.TypeBool, Ident: "bool"}
	typeTime   = &field.TypeInfo{Type: field.TypeTime, Ident: "time.Time", PkgPath: "time"}
	typeTag    = &field.TypeInfo{Type: field.TypeOther, Ident: "model.Tag", PkgPath: modelPkg}
	typeStatus = &field.TypeInfo{Type: field.TypeOther, Ident: "model.Status", PkgPath: modelPkg}
	typeMoney  = &field.TypeInfo{Type: field.TypeOther, Ident: "decimal.Decimal", PkgPath: "example.com/decimal"}
)

func ptr(t *field.TypeInfo) *field.TypeInfo {
	c := *t
	c.Pointer = true
	return &c
}

func createTestEntity(name string, fields ...*load.Field) *load.Entity {
	return &load.Entity{Name: name, Package: "model", PkgPath: modelPkg, Fields: fields}
}

func createTestField(name string, info *field.TypeInfo, markers ...field.Marker) *load.Field {
	return &load.Field{Name: name, Info: info, Markers: markers}
}

func userEntity() *load.Entity {
	return createTestEntity("User",
		createTestField("id", typeInt, field.MarkerPrimaryID),
		createTestField("name", ptr(typeString)),
		createTestField("age", ptr(typeInt)),
		createTestField("createdAt", typeTime),
		createTestField("isActive", typeBool),
		createTestField("status", typeStatus, field.MarkerEnumText),
		createTestField("balance", ptr(typeMoney)),
		createTestField("currency", typeMoney, field.MarkerEnumText),
		createTestField("tags", &field.TypeInfo{
			Type:  field.TypeCollection,
			Ident: "[]*model.Tag",
			Elem:  ptr(typeTag),
		}),
	)
}

// render builds and renders the module of e, and returns the formatted source.
func render(t *testing.T, e *load.Entity) string {
	t.Helper()
	m, err := gen.BuildModule(e)
	require.NoError(t, err)
	f, err := NewRenderer().Render(m, gen.DefaultHeader)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestRenderer_Name(t *testing.T) {
	assert.Equal(t, "golang", NewRenderer().Name())
}

func TestRender_File(t *testing.T) {
	src := render(t, userEntity())

	assert.True(t, strings.HasPrefix(src, "// Code generated by specgen. DO NOT EDIT.\n"))
	assert.Contains(t, src, "package model\n")
	assert.Contains(t, src, `"github.com/syssam/specgen/criteria"`)
	assert.Contains(t, src, `"strings"`)
	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, `"example.com/decimal"`)
	assert.NotContains(t, src, modelPkg, "the entity package is not imported")
	assert.Contains(t, src, "type userSpec struct{}")
	assert.Contains(t, src, "var UserSpec userSpec")

	_, err := parser.ParseFile(token.NewFileSet(), "user_spec.go", src, parser.ParseComments)
	require.NoError(t, err)
}

func TestRender_Members(t *testing.T) {
	src := render(t, userEntity())

	tests := []struct {
		name string
		want []string
	}{
		{
			name: "equal",
			want: []string{
				"func (userSpec) NameEqPredicate(root criteria.From[User], cb criteria.Builder, name string) criteria.Predicate {\n\treturn cb.Equal(root.Get(\"name\"), name)\n}",
				"func (s userSpec) NameEq(name string) criteria.Specification[User] {\n\treturn func(root criteria.From[User], query criteria.Query, cb criteria.Builder) criteria.Predicate {\n\t\treturn s.NameEqPredicate(root, cb, name)\n\t}\n}",
			},
		},
		{
			name: "negated",
			want: []string{
				"func (userSpec) NameNotEqPredicate(root criteria.From[User], cb criteria.Builder, name string) criteria.Predicate {\n\treturn cb.Equal(root.Get(\"name\"), name).Not()\n}",
				"func (userSpec) AgeIsNotNullPredicate(root criteria.From[User], cb criteria.Builder) criteria.Predicate {\n\treturn cb.IsNull(root.Get(\"age\")).Not()\n}",
			},
		},
		{
			name: "varargs",
			want: []string{
				"func (userSpec) NameInPredicate(root criteria.From[User], cb criteria.Builder, elements ...string) criteria.Predicate {\n\treturn root.Get(\"name\").In(criteria.Values(elements)...)\n}",
				"func (s userSpec) NameIn(elements ...string) criteria.Specification[User] {",
				"return s.NameInPredicate(root, cb, elements...)",
			},
		},
		{
			name: "collection",
			want: []string{
				"func (userSpec) IdInCollectionPredicate(root criteria.From[User], cb criteria.Builder, collection []int) criteria.Predicate {",
				"return root.Get(\"id\").In(criteria.Values(collection)...)",
				"func (s userSpec) IdNotInCollection(collection []int) criteria.Specification[User] {",
			},
		},
		{
			name: "like",
			want: []string{
				"func (userSpec) NameLikePredicate(root criteria.From[User], cb criteria.Builder, name string) criteria.Predicate {",
				"cb.Like(cb.Lower(cb.Trim(root.Get(\"name\"))),",
				"strings.ToLower(strings.TrimSpace(name))",
			},
		},
		{
			name: "between",
			want: []string{
				"func (userSpec) AgeBetweenPredicate(root criteria.From[User], cb criteria.Builder, ageFrom int, ageTo int) criteria.Predicate {\n\treturn cb.Between(root.Get(\"age\"), ageFrom, ageTo)\n}",
				"func (s userSpec) AgeNotBetween(ageFrom int, ageTo int) criteria.Specification[User] {",
			},
		},
		{
			name: "temporal",
			want: []string{
				"func (userSpec) CreatedAtAfterPredicate(root criteria.From[User], cb criteria.Builder, createdAt time.Time) criteria.Predicate {\n\treturn cb.GreaterThan(root.Get(\"createdAt\"), createdAt)\n}",
				"func (s userSpec) CreatedAtBeforeOrAt(createdAt time.Time) criteria.Specification[User] {",
			},
		},
		{
			name: "boolean",
			want: []string{
				"func (userSpec) IsActivePredicate(root criteria.From[User], cb criteria.Builder) criteria.Predicate {\n\treturn cb.IsTrue(root.Get(\"isActive\"))\n}",
				"func (userSpec) IsNotActivePredicate(root criteria.From[User], cb criteria.Builder) criteria.Predicate {\n\treturn cb.IsTrue(root.Get(\"isActive\")).Not()\n}",
				"func (s userSpec) IsNotActive() criteria.Specification[User] {",
			},
		},
		{
			name: "enum",
			want: []string{
				"func (s userSpec) StatusEq(status Status) criteria.Specification[User] {",
			},
		},
		{
			name: "object",
			want: []string{
				"func (s userSpec) BalanceIsNull() criteria.Specification[User] {",
				"func (userSpec) CurrencyEqPredicate(root criteria.From[User], cb criteria.Builder, currency decimal.Decimal) criteria.Predicate {",
			},
		},
		{
			name: "member",
			want: []string{
				"func (userSpec) IsTagsMemberPredicate(root criteria.From[User], cb criteria.Builder, element *Tag) criteria.Predicate {\n\treturn cb.IsMember(element, root.Get(\"tags\"))\n}",
				"func (userSpec) TagsIsEmptyPredicate(root criteria.From[User], cb criteria.Builder) criteria.Predicate {\n\treturn cb.IsEmpty(root.Get(\"tags\"))\n}",
			},
		},
		{
			name: "join",
			want: []string{
				"func (userSpec) LeftJoinTags(root criteria.From[User]) criteria.Join[User, Tag] {\n\treturn criteria.JoinAs[Tag, User](root, \"tags\", criteria.Left)\n}",
				"func (userSpec) InnerJoinTags(root criteria.From[User]) criteria.Join[User, Tag] {",
				"func (userSpec) RightJoinTags(root criteria.From[User]) criteria.Join[User, Tag] {",
			},
		},
		{
			name: "fetch",
			want: []string{
				"func (userSpec) InnerFetchTagsHandle(root criteria.From[User]) criteria.Fetch[User, Tag] {\n\treturn criteria.FetchAs[Tag, User](root, \"tags\", criteria.Inner)\n}",
				"func (s userSpec) InnerFetchTagsPredicate(root criteria.From[User], query criteria.Query) criteria.Predicate {\n\ts.InnerFetchTagsHandle(root)\n\tquery.Distinct(true)\n\treturn nil\n}",
				"func (s userSpec) InnerFetchTags() criteria.Specification[User] {\n\treturn func(root criteria.From[User], query criteria.Query, cb criteria.Builder) criteria.Predicate {\n\t\treturn s.InnerFetchTagsPredicate(root, query)\n\t}\n}",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				assert.Contains(t, src, want)
			}
		})
	}
}

func TestRender_Docs(t *testing.T) {
	src := render(t, userEntity())
	assert.Contains(t, src, "// userSpec groups the query specifications of User.")
	assert.Contains(t, src, "// NameEqPredicate returns a predicate testing that name equals the given value.")
	assert.Contains(t, src, "// CreatedAtAfter returns a specification of User entities where createdAt is after the given time.")
	assert.Contains(t, src, "// LeftJoinTags joins the tags relation of User with a left join.")
	assert.Contains(t, src, "// InnerJoinTags joins the tags relation of User with an inner join.")
	assert.Contains(t, src, "// InnerFetchTagsHandle fetches the tags relation of User with an inner join.")
	assert.Contains(t, src, "// RightFetchTagsHandle fetches the tags relation of User with a right join.")
	assert.NotContains(t, src, "a inner join")
	assert.Contains(t, src, "// IsNotTagsMemberPredicate returns a predicate testing that the given element is not a member of tags.")
}

func TestRender_ReservedOperands(t *testing.T) {
	src := render(t, createTestEntity("Slot",
		createTestField("type", typeString),
		createTestField("range", typeInt),
		createTestField("cb", typeInt),
	))
	assert.Contains(t, src, "func (slotSpec) TypeEqPredicate(root criteria.From[Slot], cb criteria.Builder, _type string) criteria.Predicate {\n\treturn cb.Equal(root.Get(\"type\"), _type)\n}")
	assert.Contains(t, src, "func (slotSpec) RangeBetweenPredicate(root criteria.From[Slot], cb criteria.Builder, rangeFrom int, rangeTo int) criteria.Predicate {")
	assert.Contains(t, src, "func (slotSpec) RangeGreaterThanPredicate(root criteria.From[Slot], cb criteria.Builder, _range int) criteria.Predicate {")
	assert.Contains(t, src, "func (s slotSpec) CbEq(_cb int) criteria.Specification[Slot] {")
	assert.Contains(t, src, "return s.CbEqPredicate(root, cb, _cb)")
}

func TestRender_ExternalEntity(t *testing.T) {
	e := &load.Entity{
		Name:    "Invoice",
		Package: "billing",
		Fields:  []*load.Field{createTestField("total", typeInt)},
	}
	src := render(t, e)
	assert.Contains(t, src, "package billing\n")
	assert.Contains(t, src, "type invoiceSpec struct{}")
	assert.Contains(t, src, "func (invoiceSpec) TotalEqPredicate(root criteria.From[Invoice], cb criteria.Builder, total int) criteria.Predicate {")
}

func TestRender_Errors(t *testing.T) {
	t.Run("missing package", func(t *testing.T) {
		m, err := gen.BuildModule(&load.Entity{Name: "User"})
		require.NoError(t, err)
		_, err = NewRenderer().Render(m, gen.DefaultHeader)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no package name")
	})

	t.Run("unnamed relation target", func(t *testing.T) {
		m, err := gen.BuildModule(createTestEntity("User"))
		require.NoError(t, err)
		m.Members = append(m.Members, &gen.Member{
			Kind:   gen.KindJoinAccessor,
			Name:   "leftJoinItems",
			Op:     gen.JoinLeft,
			Target: &field.TypeInfo{Type: field.TypeOther, Ident: "map[string]int"},
		})
		_, err = NewRenderer().Render(m, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "member LeftJoinItems")
	})
}

func TestParamName(t *testing.T) {
	for in, want := range map[string]string{
		"name":     "name",
		"type":     "_type",
		"func":     "_func",
		"range":    "_range",
		"root":     "_root",
		"query":    "_query",
		"cb":       "_cb",
		"s":        "_s",
		"criteria": "_criteria",
		"strings":  "_strings",
		"nil":      "_nil",
		"rangeTo":  "rangeTo",
	} {
		assert.Equal(t, want, paramName(in), in)
	}
}

func TestTypeCode(t *testing.T) {
	_, err := typeCode(nil)
	assert.Error(t, err)
	_, err = typeCode(&field.TypeInfo{Type: field.TypeOther, Ident: "[]byte"})
	assert.Error(t, err)
	c, err := typeCode(ptr(typeTag))
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	cfg := gen.MustNewConfig(
		gen.WithTarget(dir),
		gen.WithRenderer(NewRenderer()),
		gen.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	g := gen.NewGenerator(cfg)
	entities := []*load.Entity{
		userEntity(),
		createTestEntity("UserProfile", createTestField("bio", typeString)),
	}
	require.NoError(t, g.Generate(context.Background(), entities))

	for _, name := range []string{"user_spec.go", "user_profile_spec.go"} {
		buf, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		_, err = parser.ParseFile(token.NewFileSet(), name, buf, parser.ParseComments)
		require.NoError(t, err, name)
		assert.Contains(t, string(buf), "// Code generated by specgen. DO NOT EDIT.")
	}
	m := g.Metrics()
	assert.Equal(t, 2, m.FilesGenerated)
	assert.Contains(t, logs.String(), "renderer=golang")
}
