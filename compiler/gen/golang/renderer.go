package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/specgen/compiler/gen"
)

// Renderer renders modules as Go source files using Jennifer.
// It holds no state and is safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a new Go renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Verify Renderer implements gen.Renderer at compile time.
var _ gen.Renderer = (*Renderer)(nil)

// Name implements gen.Renderer.
func (*Renderer) Name() string { return "golang" }

// Render implements gen.Renderer. The file belongs to the package of the
// entity and declares a namespace variable holding one method per member.
func (*Renderer) Render(m *gen.Module, header string) (*jen.File, error) {
	e := m.Entity
	if e.Package == "" {
		return nil, fmt.Errorf("entity %s has no package name", e.Name)
	}
	var f *jen.File
	if e.PkgPath != "" {
		f = jen.NewFilePathName(e.PkgPath, e.Package)
	} else {
		f = jen.NewFile(e.Package)
	}
	if header != "" {
		f.HeaderComment(header)
	}
	f.ImportName(criteriaPkg(), "criteria")
	w := &writer{file: f, module: m}
	if err := w.write(); err != nil {
		return nil, err
	}
	return f, nil
}
