package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed subjects.toml
var defaultCatalog []byte

var (
	// ErrUnknownSubject is returned when a subject id is not in the catalog.
	ErrUnknownSubject = errors.New("unknown subject")
	// ErrNoSubjects is returned for a catalog without entries.
	ErrNoSubjects = errors.New("catalog has no subjects")
)

// Subject is a displayable body (a planet) and its presentation settings.
type Subject struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	// Regions enables the region classifier. Bodies without a region map
	// always report the unknown region.
	Regions bool `toml:"regions"`
}

// Catalog lists the subjects a user can switch between.
type Catalog struct {
	Default  string    `toml:"default"`
	Subjects []Subject `toml:"subject"`
}

// LoadCatalog reads a catalog from path, or the built-in one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a TOML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.Subjects) == 0 {
		return nil, ErrNoSubjects
	}

	seen := make(map[string]bool, len(c.Subjects))
	for i, s := range c.Subjects {
		if s.ID == "" {
			return nil, fmt.Errorf("subject %d has no id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate subject %q", s.ID)
		}
		seen[s.ID] = true
	}

	if c.Default == "" {
		c.Default = c.Subjects[0].ID
	}
	if !seen[c.Default] {
		return nil, fmt.Errorf("default %q: %w", c.Default, ErrUnknownSubject)
	}
	return &c, nil
}

// Lookup returns the subject with the given id.
func (c *Catalog) Lookup(id string) (Subject, error) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return Subject{}, fmt.Errorf("%q: %w", id, ErrUnknownSubject)
}

// DefaultSubject returns the subject shown at startup.
func (c *Catalog) DefaultSubject() Subject {
	s, _ := c.Lookup(c.Default)
	return s
}
