// Package catalog provides catalog sources that decode vehicles from YAML.
//
// The showroom ships with its catalog embedded in the binary; a replacement
// catalog with the same schema can be read from disk.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/butch-garage/showroom/internal/core/domain"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
)

//go:embed vehicles.yaml
var embeddedCatalog []byte

// Ensure the sources implement the interface.
var (
	_ driven.CatalogSource = (*EmbeddedSource)(nil)
	_ driven.CatalogSource = (*FileSource)(nil)
)

// document is the top-level YAML layout.
type document struct {
	Vehicles []domain.Vehicle `yaml:"vehicles"`
}

// EmbeddedSource reads the catalog compiled into the binary.
type EmbeddedSource struct{}

// Embedded returns the built-in showroom catalog source.
func Embedded() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load decodes the embedded catalog.
func (s *EmbeddedSource) Load(_ context.Context) ([]domain.Vehicle, error) {
	return Decode(bytes.NewReader(embeddedCatalog))
}

// Name identifies the source in logs.
func (s *EmbeddedSource) Name() string {
	return "embedded"
}

// FileSource reads a catalog from a YAML file.
type FileSource struct {
	path string
}

// File returns a source reading the catalog at path.
func File(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the catalog file.
func (s *FileSource) Load(ctx context.Context) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	vehicles, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return vehicles, nil
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Decode reads a YAML catalog document. Unknown fields are rejected so
// typos in hand-edited catalogs surface at load time.
func Decode(r io.Reader) ([]domain.Vehicle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Vehicle{}, nil
		}
		return nil, fmt.Errorf("%w: decode catalog: %v", domain.ErrInvalidInput, err)
	}

	for i := range doc.Vehicles {
		if err := validate(&doc.Vehicles[i]); err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", i+1, err)
		}
	}
	if doc.Vehicles == nil {
		doc.Vehicles = []domain.Vehicle{}
	}
	return doc.Vehicles, nil
}

func validate(v *domain.Vehicle) error {
	if v.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidInput)
	}
	if v.Name == "" {
		return fmt.Errorf("%w: %s: missing name", domain.ErrInvalidInput, v.ID)
	}
	if !v.MarketState.IsValid() {
		return fmt.Errorf("%w: %s: unknown market status %q", domain.ErrInvalidInput, v.ID, v.MarketState)
	}
	return nil
}
