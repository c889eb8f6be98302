package profile

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/advisor/pkg/validation"
)

var ErrNoArchetypes = errors.New("registry file defines no archetypes")

type registryFile struct {
	Archetypes []Archetype `yaml:"archetypes" validate:"dive"`
}

// ParseYAML builds a registry from the "archetypes" list of a YAML document.
func ParseYAML(data []byte) (Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Registry{}, fmt.Errorf("decode archetypes: %w", err)
	}
	if len(f.Archetypes) == 0 {
		return Registry{}, ErrNoArchetypes
	}
	if err := validation.Struct(f); err != nil {
		return Registry{}, fmt.Errorf("validate archetypes: %w", err)
	}
	return NewRegistry(f.Archetypes)
}
