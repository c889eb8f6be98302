package advisor

import (
	"errors"
	"fmt"
	"os"

	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/profile"
)

// Registries are the keyword tables the core runs on.
type Registries struct {
	Categories category.Registry
	Archetypes profile.Registry
}

func DefaultRegistries() Registries {
	return Registries{Categories: category.DefaultRegistry(), Archetypes: profile.DefaultRegistry()}
}

// LoadRegistries reads a YAML file with "categories" and/or "archetypes"
// lists. A missing list keeps the built-in one. An empty path returns the
// defaults.
func LoadRegistries(path string) (Registries, error) {
	if path == "" {
		return DefaultRegistries(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Registries{}, fmt.Errorf("read registry file: %w", err)
	}
	return ParseRegistries(data)
}

func ParseRegistries(data []byte) (Registries, error) {
	regs := DefaultRegistries()

	cats, err := category.ParseYAML(data)
	switch {
	case err == nil:
		regs.Categories = cats
	case !errors.Is(err, category.ErrNoCategories):
		return Registries{}, err
	}

	archs, err := profile.ParseYAML(data)
	switch {
	case err == nil:
		regs.Archetypes = archs
	case !errors.Is(err, profile.ErrNoArchetypes):
		return Registries{}, err
	}

	known := func(key string) bool {
		_, ok := regs.Categories.Lookup(key)
		return ok
	}
	if err := regs.Archetypes.CheckPreferences(known); err != nil {
		return Registries{}, err
	}
	return regs, nil
}
