package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/specgen/compiler/load"
)

// Renderer renders a finalized module into a Go file.
// Implementations must be safe for concurrent use.
type Renderer interface {
	// Name returns the renderer name (e.g. "golang").
	Name() string
	// Render returns the file of the module, with the given header comment.
	Render(m *Module, header string) (*jen.File, error)
}

// Generator generates the specification files of a set of entities.
//
// Entities are independent: each one is built, rendered and written by its
// own task, with at most Config.Workers tasks running at once. A failing
// entity does not stop the others, and all failures are reported together.
type Generator struct {
	cfg     *Config
	log     *slog.Logger
	workers int

	mu      sync.Mutex
	metrics Metrics
}

// Metrics tracks generation results.
type Metrics struct {
	Entities       int
	FilesGenerated int
	Members        int
	Specifications int
	TotalBytes     int64
	Failed         int
}

// NewGenerator creates a new generator for the given configuration.
func NewGenerator(cfg *Config) *Generator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		cfg:     cfg,
		log:     cfg.logger(),
		workers: workers,
	}
}

// Metrics returns a snapshot of the generation metrics.
func (g *Generator) Metrics() Metrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.metrics
}

// Generate generates one file per entity. It returns the joined errors of
// all failed entities, or the context error if it was canceled.
// Log records of a call carry the same "run" identifier.
func (g *Generator) Generate(ctx context.Context, entities []*load.Entity) error {
	if g.cfg.Renderer == nil {
		return NewConfigError("Renderer", nil, "no renderer set: use WithRenderer")
	}
	if err := g.checkOutputs(entities); err != nil {
		return err
	}
	start := time.Now()
	log := g.log.With("run", uuid.NewString())
	var (
		errMu sync.Mutex
		errs  []error
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for _, e := range entities {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := g.generate(log, e); err != nil {
				log.Error("entity generation failed", "entity", e.Name, "error", err)
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	m := g.Metrics()
	log.Info("generation finished",
		"renderer", g.cfg.Renderer.Name(),
		"entities", m.Entities,
		"files", m.FilesGenerated,
		"members", m.Members,
		"specifications", m.Specifications,
		"failed", m.Failed,
		"duration", time.Since(start),
	)
	return errors.Join(errs...)
}

// generate builds, renders and writes the module of a single entity.
func (g *Generator) generate(log *slog.Logger, e *load.Entity) error {
	g.record(func(m *Metrics) { m.Entities++ })
	mod, err := BuildModule(e)
	if err != nil {
		g.record(func(m *Metrics) { m.Failed++ })
		return NewGenerationError("build", "", "entity "+e.Name, err)
	}
	f, err := g.cfg.Renderer.Render(mod, g.cfg.header())
	if err != nil {
		g.record(func(m *Metrics) { m.Failed++ })
		return NewGenerationError("render", mod.Filename(), "", err)
	}
	dir := g.outputDir(e)
	if dir == "" {
		g.record(func(m *Metrics) { m.Failed++ })
		return NewConfigError("Target", nil, "entity "+e.Name+" has no directory and no target is set")
	}
	n, path, err := writeFile(f, dir, mod.Filename())
	if err != nil {
		g.record(func(m *Metrics) { m.Failed++ })
		return err
	}
	g.record(func(m *Metrics) {
		m.FilesGenerated++
		m.Members += len(mod.Members)
		m.Specifications += len(mod.Specifications())
		m.TotalBytes += int64(n)
	})
	log.Debug("entity generated", "entity", e.Name, "file", path, "members", len(mod.Members))
	return nil
}

// outputDir returns the directory of the file generated for e.
func (g *Generator) outputDir(e *load.Entity) string {
	if g.cfg.Target != "" {
		return g.cfg.Target
	}
	return e.Dir
}

// checkOutputs rejects runs where two entities would write the same file,
// or where entities of different packages would share the target
// directory. Generated files declare the package of their entity, so a
// directory holding several packages does not compile.
func (g *Generator) checkOutputs(entities []*load.Entity) error {
	var (
		paths = make(map[string]*load.Entity, len(entities))
		first *load.Entity
	)
	for _, e := range entities {
		dir := g.outputDir(e)
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, Filename(e))
		if prev, ok := paths[path]; ok {
			return NewConfigError("Target", path, fmt.Sprintf("entities %s and %s generate the same file", qualified(prev), qualified(e)))
		}
		paths[path] = e
		if g.cfg.Target == "" {
			continue
		}
		switch {
		case first == nil:
			first = e
		case packageOf(first) != packageOf(e):
			return NewConfigError("Target", g.cfg.Target, fmt.Sprintf("entities %s and %s belong to different packages", qualified(first), qualified(e)))
		}
	}
	return nil
}

// packageOf identifies the package of an entity.
func packageOf(e *load.Entity) string {
	if e.PkgPath != "" {
		return e.PkgPath
	}
	return e.Package
}

func qualified(e *load.Entity) string {
	if p := packageOf(e); p != "" {
		return p + "." + e.Name
	}
	return e.Name
}

func (g *Generator) record(update func(*Metrics)) {
	g.mu.Lock()
	update(&g.metrics)
	g.mu.Unlock()
}
