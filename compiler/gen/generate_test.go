package gen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen/compiler/load"
)

// fakeRenderer renders each module as a list of its member names.
type fakeRenderer struct {
	mu       sync.Mutex
	rendered []string
	// fail lists the entities whose rendering fails.
	fail map[string]bool
	// broken lists the entities rendered as invalid Go.
	broken map[string]bool
}

func (*fakeRenderer) Name() string { return "fake" }

func (r *fakeRenderer) Render(m *Module, header string) (*jen.File, error) {
	r.mu.Lock()
	r.rendered = append(r.rendered, m.Name())
	r.mu.Unlock()
	if r.fail[m.Name()] {
		return nil, errors.New("render failed")
	}
	f := jen.NewFile(m.Entity.Package)
	f.HeaderComment(header)
	if r.broken[m.Name()] {
		f.Func().Id("broken").Params().Block(jen.Op("}{"))
		return f, nil
	}
	names := make([]jen.Code, 0, len(m.Members))
	for _, mb := range m.Members {
		names = append(names, jen.Lit(mb.GoName()))
	}
	f.Var().Id(m.Var()).Op("=").Index().String().Values(names...)
	return f, nil
}

func testGenerator(t *testing.T, r *fakeRenderer, opts ...Option) (*Generator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{
		WithTarget(t.TempDir()),
		WithRenderer(r),
		WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	}, opts...)
	return NewGenerator(MustNewConfig(opts...)), &buf
}

func TestGenerator_Generate(t *testing.T) {
	r := &fakeRenderer{}
	g, logs := testGenerator(t, r, WithWorkers(2))
	entities := []*load.Entity{
		userEntity(),
		createTestEntity("OrderItem", createTestField("quantity", typeInt)),
		createTestEntity("Empty"),
	}
	require.NoError(t, g.Generate(context.Background(), entities))
	assert.ElementsMatch(t, []string{"User", "OrderItem", "Empty"}, r.rendered)

	dir := g.cfg.Target
	buf, err := os.ReadFile(filepath.Join(dir, "user_spec.go"))
	require.NoError(t, err)
	src := string(buf)
	assert.True(t, strings.HasPrefix(src, "// "+DefaultHeader), "header comes first")
	assert.Contains(t, src, "package model")
	assert.Contains(t, src, `"NameEqPredicate"`)
	assert.Contains(t, src, `"LeftFetchTagsHandle"`)
	assert.FileExists(t, filepath.Join(dir, "order_item_spec.go"))
	assert.FileExists(t, filepath.Join(dir, "empty_spec.go"))

	m := g.Metrics()
	assert.Equal(t, 3, m.Entities)
	assert.Equal(t, 3, m.FilesGenerated)
	assert.Equal(t, 0, m.Failed)
	assert.Positive(t, m.Members)
	assert.Positive(t, m.Specifications)
	assert.Less(t, m.Specifications, m.Members)
	assert.Positive(t, m.TotalBytes)

	assert.Contains(t, logs.String(), "generation finished")
	assert.Contains(t, logs.String(), "renderer=fake")
	assert.Contains(t, logs.String(), "entity=User")
	assert.Regexp(t, `run=[0-9a-f]{8}-[0-9a-f]{4}-`, logs.String())
}

func TestGenerator_Header(t *testing.T) {
	g, _ := testGenerator(t, &fakeRenderer{}, WithHeader("Code generated by tests. DO NOT EDIT."))
	require.NoError(t, g.Generate(context.Background(), []*load.Entity{createTestEntity("Tag")}))
	buf, err := os.ReadFile(filepath.Join(g.cfg.Target, "tag_spec.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "// Code generated by tests. DO NOT EDIT.")
}

func TestGenerator_EntityDir(t *testing.T) {
	dir := t.TempDir()
	e := createTestEntity("Tag")
	e.Dir = filepath.Join(dir, "model")
	g := NewGenerator(MustNewConfig(WithRenderer(&fakeRenderer{}), WithLogger(slog.New(slog.DiscardHandler))))
	require.NoError(t, g.Generate(context.Background(), []*load.Entity{e}))
	assert.FileExists(t, filepath.Join(dir, "model", "tag_spec.go"))

	err := g.Generate(context.Background(), []*load.Entity{createTestEntity("Orphan")})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestGenerator_Failures(t *testing.T) {
	r := &fakeRenderer{
		fail:   map[string]bool{"Invoice": true},
		broken: map[string]bool{"Broken": true},
	}
	g, logs := testGenerator(t, r)
	entities := []*load.Entity{
		createTestEntity("User", createTestField("name", typeString)),
		createTestEntity("Order", createTestField("lines", sliceOf(typeStringMap))),
		createTestEntity("Invoice", createTestField("total", typeFloat64)),
		createTestEntity("Broken"),
	}
	err := g.Generate(context.Background(), entities)
	require.Error(t, err)

	assert.True(t, IsGenerationError(err))
	assert.True(t, IsSchemaError(err), "schema errors are reported")
	assert.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), "phase build")
	assert.Contains(t, err.Error(), "entity Order")
	assert.Contains(t, err.Error(), "render failed")
	assert.Contains(t, err.Error(), "broken_spec.go")

	dir := g.cfg.Target
	assert.FileExists(t, filepath.Join(dir, "user_spec.go"), "failures do not stop other entities")
	assert.NoFileExists(t, filepath.Join(dir, "order_spec.go"))
	assert.NoFileExists(t, filepath.Join(dir, "invoice_spec.go"))
	assert.NoFileExists(t, filepath.Join(dir, "broken_spec.go"))
	assert.NotContains(t, r.rendered, "Order", "failed modules are not rendered")

	m := g.Metrics()
	assert.Equal(t, 4, m.Entities)
	assert.Equal(t, 1, m.FilesGenerated)
	assert.Equal(t, 3, m.Failed)
	assert.Contains(t, logs.String(), "entity generation failed")
}

func TestGenerator_Outputs(t *testing.T) {
	other := func(name string) *load.Entity {
		return &load.Entity{Name: name, Package: "billing", PkgPath: "example.com/app/billing"}
	}
	t.Run("mixed packages under target", func(t *testing.T) {
		r := &fakeRenderer{}
		g, _ := testGenerator(t, r)
		err := g.Generate(context.Background(), []*load.Entity{createTestEntity("User"), other("Invoice")})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "example.com/app/model.User and example.com/app/billing.Invoice belong to different packages")
		assert.Empty(t, r.rendered, "nothing is generated")
		assert.NoFileExists(t, filepath.Join(g.cfg.Target, "user_spec.go"))
	})
	t.Run("same file", func(t *testing.T) {
		r := &fakeRenderer{}
		g, _ := testGenerator(t, r)
		err := g.Generate(context.Background(), []*load.Entity{createTestEntity("UserProfile"), createTestEntity("User_Profile")})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "generate the same file")
		assert.Empty(t, r.rendered)
	})
	t.Run("same name in package dirs", func(t *testing.T) {
		dir := t.TempDir()
		a, b := createTestEntity("User"), other("User")
		a.Dir = filepath.Join(dir, "model")
		b.Dir = filepath.Join(dir, "billing")
		g := NewGenerator(MustNewConfig(WithRenderer(&fakeRenderer{}), WithLogger(slog.New(slog.DiscardHandler))))
		require.NoError(t, g.Generate(context.Background(), []*load.Entity{a, b}))
		assert.FileExists(t, filepath.Join(dir, "model", "user_spec.go"))
		assert.FileExists(t, filepath.Join(dir, "billing", "user_spec.go"))
	})
	t.Run("same name in one dir", func(t *testing.T) {
		dir := t.TempDir()
		a, b := createTestEntity("User"), other("User")
		a.Dir, b.Dir = dir, dir
		g := NewGenerator(MustNewConfig(WithRenderer(&fakeRenderer{}), WithLogger(slog.New(slog.DiscardHandler))))
		err := g.Generate(context.Background(), []*load.Entity{a, b})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "example.com/app/model.User and example.com/app/billing.User generate the same file")
	})
}

func TestGenerator_NoRenderer(t *testing.T) {
	g := NewGenerator(MustNewConfig(WithTarget(t.TempDir())))
	err := g.Generate(context.Background(), []*load.Entity{createTestEntity("User")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestGenerator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &fakeRenderer{}
	g, _ := testGenerator(t, r, WithWorkers(1))
	err := g.Generate(ctx, []*load.Entity{createTestEntity("User"), createTestEntity("Tag")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.rendered)
}

func TestNewGenerator_Workers(t *testing.T) {
	g := NewGenerator(&Config{})
	assert.Positive(t, g.workers)
	g = NewGenerator(&Config{Workers: 3})
	assert.Equal(t, 3, g.workers)
}
