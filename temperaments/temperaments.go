// Package temperaments bundles a small catalog of well-known temperaments
// as embedded JSON documents.
package temperaments

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/katalvlaran/temperament/schema"
	"github.com/katalvlaran/temperament/temperament"
)

// ErrUnknownTemperament is returned for a name not in the catalog.
var ErrUnknownTemperament = errors.New("temperaments: unknown temperament")

//go:embed data/*.json
var data embed.FS

// Names returns the names of the bundled temperaments, sorted.
func Names() []string {
	entries, err := data.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Raw returns the embedded JSON document for name.
func Raw(name string) ([]byte, error) {
	b, err := data.ReadFile(path.Join("data", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemperament, name)
	}
	return b, nil
}

// Descriptor decodes the bundled temperament name. Each call returns a
// fresh Descriptor the caller may modify.
func Descriptor(name string) (*schema.Descriptor, error) {
	b, err := Raw(name)
	if err != nil {
		return nil, err
	}
	d, err := schema.DecodeJSON(b)
	if err != nil {
		return nil, fmt.Errorf("temperaments: bundled %q: %w", name, err)
	}
	return d, nil
}

// Load builds the bundled temperament name.
func Load(name string, opts ...temperament.Option) (*temperament.Temperament, error) {
	d, err := Descriptor(name)
	if err != nil {
		return nil, err
	}
	return temperament.New(*d, opts...)
}
