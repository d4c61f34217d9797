// Package catalog holds the scholarship reference data. A Catalog is loaded
// once (from the compiled-in default or a JSON asset) and is immutable from
// then on; the matching and eligibility engines consume it as a read-only
// dependency.
package catalog

import (
	"fmt"
	"strings"

	"scholarship-workers/internal/models"
)

// ErrNotFound is returned by Get for an unknown scholarship id.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("scholarship not found: %s", e.ID)
}

// Catalog is an ordered, id-indexed set of scholarships.
type Catalog struct {
	version string
	entries []models.Scholarship
	byID    map[string]int
}

// New builds a catalog from an ordered entry list. Duplicate ids are
// rejected since lookups are by unique id.
func New(version string, entries []models.Scholarship) (*Catalog, error) {
	byID := make(map[string]int, len(entries))
	for i, s := range entries {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scholarship id: %s", s.ID)
		}
		byID[s.ID] = i
	}
	return &Catalog{version: version, entries: entries, byID: byID}, nil
}

// Version reports the catalog asset version.
func (c *Catalog) Version() string {
	return c.version
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the scholarship for id or ErrNotFound.
func (c *Catalog) Get(id string) (models.Scholarship, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Scholarship{}, &ErrNotFound{ID: id}
	}
	return c.entries[i], nil
}

// All returns the entries in catalog order. The returned slice is a copy;
// callers cannot mutate the catalog through it.
func (c *Catalog) All() []models.Scholarship {
	out := make([]models.Scholarship, len(c.entries))
	copy(out, c.entries)
	return out
}

// List returns entries filtered by display category, preserving catalog
// order. An empty category matches everything; limit <= 0 means no limit.
func (c *Catalog) List(category string, limit int) []models.Scholarship {
	var out []models.Scholarship
	for _, s := range c.entries {
		if category != "" && !strings.EqualFold(s.Category, category) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Search finds entries whose title, provider, criteria, or tags contain the
// query, case-insensitive, preserving catalog order. An empty query matches
// nothing.
func (c *Catalog) Search(query string, limit int) []models.Scholarship {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.Scholarship
	for _, s := range c.entries {
		if matchesQuery(s, q) {
			out = append(out, s)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

func matchesQuery(s models.Scholarship, q string) bool {
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Provider), q) ||
		strings.Contains(strings.ToLower(s.Criteria), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
