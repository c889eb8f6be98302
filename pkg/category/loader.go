package category

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/advisor/pkg/validation"
)

var ErrNoCategories = errors.New("registry file defines no categories")

type registryFile struct {
	Categories []Category `yaml:"categories" validate:"dive"`
}

// ParseYAML builds a registry from the "categories" list of a YAML document.
// List order becomes registry order.
func ParseYAML(data []byte) (Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Registry{}, fmt.Errorf("decode categories: %w", err)
	}
	if len(f.Categories) == 0 {
		return Registry{}, ErrNoCategories
	}
	if err := validation.Struct(f); err != nil {
		return Registry{}, fmt.Errorf("validate categories: %w", err)
	}
	return NewRegistry(f.Categories)
}
