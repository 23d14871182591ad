// Package catalog provides the registry of known desktop profiles.
//
// The built-in profile data is compiled into the binary. Users can extend or
// override it with a profiles.yaml in the config directory using the same
// schema; extension is a data change, not a code change.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dsw/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// ProfileConfig is the YAML representation of a profile
type ProfileConfig struct {
	Name           string   `yaml:"name"`
	DisplayManager string   `yaml:"display_manager"`
	Packages       []string `yaml:"packages"`
}

// catalogFile is the top-level catalog.yaml / profiles.yaml structure
type catalogFile struct {
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

// Catalog is an immutable profile registry. Lookups are safe for concurrent
// use; the underlying map is never mutated after construction.
type Catalog struct {
	profiles map[string]domain.Profile
}

// New builds a catalog from the given profiles. Intended for tests that need
// a small fixture catalog instead of the built-in data.
func New(profiles ...domain.Profile) *Catalog {
	m := make(map[string]domain.Profile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &Catalog{profiles: m}
}

// Builtin returns the compiled-in catalog.
func Builtin() (*Catalog, error) {
	return parse(builtin)
}

// Load returns the built-in catalog merged with an optional profiles.yaml
// from the config directory. User entries win on ID collision.
func Load(configDir string) (*Catalog, error) {
	cat, err := Builtin()
	if err != nil {
		return nil, err
	}

	userPath := filepath.Join(configDir, "profiles.yaml")
	data, err := os.ReadFile(userPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cat, nil
		}
		return nil, fmt.Errorf("reading profiles.yaml: %w", err)
	}

	user, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profiles.yaml: %w", err)
	}

	for id, p := range user.profiles {
		cat.profiles[id] = p
	}
	return cat, nil
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	profiles := make(map[string]domain.Profile, len(file.Profiles))
	for id, cfg := range file.Profiles {
		if cfg.Name == "" {
			return nil, fmt.Errorf("%w: profile %q has no name", domain.ErrInvalidConfig, id)
		}
		profiles[id] = domain.Profile{
			ID:             id,
			Name:           cfg.Name,
			Packages:       cfg.Packages,
			DisplayManager: cfg.DisplayManager,
		}
	}
	return &Catalog{profiles: profiles}, nil
}

// Lookup returns the profile with the given ID.
func (c *Catalog) Lookup(id string) (domain.Profile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, id)
	}
	return p, nil
}

// Has reports whether the catalog contains the given ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.profiles[id]
	return ok
}

// Profiles returns all profiles sorted by ID.
func (c *Catalog) Profiles() []domain.Profile {
	out := make([]domain.Profile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of profiles in the catalog.
func (c *Catalog) Len() int {
	return len(c.profiles)
}
