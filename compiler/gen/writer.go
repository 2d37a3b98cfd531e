package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// writeFile renders f, formats it with goimports and writes it to
// dir/name. It returns the number of bytes written and the file path.
//
// When the rendered source cannot be formatted, the raw output is written
// to a ".error" file next to the target for debugging.
func writeFile(f *jen.File, dir, name string) (int, string, error) {
	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return 0, path, NewGenerationError("render", path, "", err)
	}
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		// Errors are ignored as we're already in an error state.
		debugPath := path + ".error"
		_ = os.MkdirAll(dir, 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return 0, path, NewGenerationError("format", path, "unformatted source written to "+debugPath, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, path, NewGenerationError("write", path, "create directory", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return 0, path, NewGenerationError("write", path, "", err)
	}
	return len(formatted), path, nil
}
