// Package examples embeds the bundled read-only example documents offered by
// the "load example" menu.
package examples

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrUnknownExample is returned for a name that is not bundled.
var ErrUnknownExample = errors.New("unknown example")

// Example describes a bundled document.
type Example struct {
	Name     string
	Category string
	Title    string
}

// FileName returns the document file name of the example.
func (e Example) FileName() string {
	return e.Name + ".json"
}

// catalog lists the bundled documents in menu order.
var catalog = []Example{
	{Name: "c", Category: "coding", Title: "C"},
	{Name: "cpp", Category: "coding", Title: "C++"},
	{Name: "python", Category: "coding", Title: "Python"},
	{Name: "java", Category: "coding", Title: "Java"},
	{Name: "html", Category: "coding", Title: "HTML"},
	{Name: "info", Category: "templates", Title: "Personal Info"},
	{Name: "doc", Category: "templates", Title: "Documents"},
}

// List returns every bundled example in menu order.
func List() []Example {
	out := make([]Example, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the example with the given name.
func Lookup(name string) (Example, error) {
	for _, e := range catalog {
		if e.Name == name {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
}

// Open returns the raw document bytes of the named example.
func Open(name string) ([]byte, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	data, err := dataFS.ReadFile("data/" + e.FileName())
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", e.FileName(), err)
	}
	return data, nil
}

// Export writes a copy of the named example into dir and returns its path.
// Existing files are not overwritten unless force is set.
func Export(name, dir string, force bool) (string, error) {
	data, err := Open(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	e, _ := Lookup(name)
	dest := filepath.Join(dir, e.FileName())

	if !force {
		if _, err := os.Stat(dest); err == nil {
			return "", fmt.Errorf("%s already exists; use --force to overwrite", dest)
		}
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}

	return dest, nil
}
