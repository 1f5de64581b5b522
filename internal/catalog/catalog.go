// Package catalog loads the static document corpus and user profiles
// from YAML. Catalogs are built once at startup and read-only after.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/profile"
)

// Catalog holds the loaded documents and profiles.
type Catalog struct {
	documents []document.Document
	profiles  map[string]profile.Profile
	order     []string
}

// Load reads a catalog YAML file and constructs the domain objects.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML.
func Parse(data []byte) (*Catalog, error) {
	var file fileDTO
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{profiles: make(map[string]profile.Profile, len(file.Profiles))}

	seen := make(map[string]struct{}, len(file.Documents))
	for _, dto := range file.Documents {
		doc, err := document.New(dto.ID, dto.Text, dto.Category, dto.Region, dto.Vendor)
		if err != nil {
			return nil, fmt.Errorf("catalog document: %w", err)
		}
		if _, dup := seen[doc.ID()]; dup {
			return nil, fmt.Errorf("catalog document: duplicate id %q", doc.ID())
		}
		seen[doc.ID()] = struct{}{}
		c.documents = append(c.documents, doc)
	}

	for _, dto := range file.Profiles {
		p, err := profile.New(profile.Config{
			UserID:               dto.UserID,
			Name:                 dto.Name,
			HomeCity:             dto.HomeCity,
			PreferredAirline:     dto.PreferredAirline,
			BudgetLimit:          dto.BudgetLimit,
			Language:             dto.Language,
			SeatPreference:       dto.SeatPreference,
			FrequentDestinations: dto.FrequentDestinations,
		})
		if err != nil {
			return nil, fmt.Errorf("catalog profile: %w", err)
		}
		if _, dup := c.profiles[p.UserID()]; dup {
			return nil, fmt.Errorf("catalog profile: duplicate user_id %q", p.UserID())
		}
		c.profiles[p.UserID()] = p
		c.order = append(c.order, p.UserID())
	}

	return c, nil
}

// Documents returns the loaded corpus in file order. The slice is a
// copy; the catalog stays immutable.
func (c *Catalog) Documents() []document.Document {
	docs := make([]document.Document, len(c.documents))
	copy(docs, c.documents)
	return docs
}

// Profile looks up a profile by user id.
func (c *Catalog) Profile(userID string) (profile.Profile, error) {
	p, ok := c.profiles[userID]
	if !ok {
		return profile.Profile{}, fmt.Errorf("profile %q: %w", userID, domain.ErrNotFound)
	}
	return p, nil
}

// Profiles returns all profiles in file order.
func (c *Catalog) Profiles() []profile.Profile {
	out := make([]profile.Profile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.profiles[id])
	}
	return out
}
