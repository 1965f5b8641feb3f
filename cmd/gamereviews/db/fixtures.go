package db

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tjper/gamereviews/cmd/gamereviews/model"
	ivalidator "github.com/tjper/gamereviews/internal/validator"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the seed data a Store is created with.
type Fixtures struct {
	Games   []model.Game   `yaml:"games" validate:"dive"`
	Reviews []model.Review `yaml:"reviews" validate:"dive"`
	Authors []model.Author `yaml:"authors" validate:"dive"`
}

// DefaultFixtures retrieves the Fixtures compiled into the binary.
func DefaultFixtures() (*Fixtures, error) {
	return DecodeFixtures(bytes.NewReader(defaultFixtures))
}

// LoadFixtures reads Fixtures from the YAML file at path. If path is empty,
// the DefaultFixtures are retrieved.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return DecodeFixtures(f)
}

// DecodeFixtures decodes a YAML document from r into Fixtures. Unknown fields
// and records missing an id are rejected.
func DecodeFixtures(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	fixtures := new(Fixtures)
	if err := dec.Decode(fixtures); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := ivalidator.New().Struct(fixtures); err != nil {
		return nil, fmt.Errorf("validate fixtures: %w", err)
	}
	return fixtures, nil
}
