// Package catalog holds the read-only reference data: the exercise library and the food table.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fitevolve/fitevolve/internal/errors"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.NewSentinel("not found")

// searchLimit caps the number of search results.
const searchLimit = 20

// Entry is implemented by the catalog entry types.
type Entry interface {
	Exercise | Food
	key() string
	group() string
	matches(lowercaseQuery string) bool
}

// Catalog is an ordered, immutable collection of entries.
type Catalog[T Entry] struct {
	entries []T
}

func newCatalog[T Entry](entries []T) Catalog[T] {
	return Catalog[T]{entries: entries}
}

// All returns a copy of every entry in catalog order.
func (c Catalog[T]) All() []T {
	return slices.Clone(c.entries)
}

func (c Catalog[T]) Len() int {
	return len(c.entries)
}

// FindByID returns the entry with the given id.
func (c Catalog[T]) FindByID(id string) (T, error) {
	for _, e := range c.entries {
		if e.key() == id {
			return e, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Search matches query case-insensitively against the entries and returns at most 20 results.
func (c Catalog[T]) Search(query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	var result []T
	for _, e := range c.entries {
		if len(result) == searchLimit {
			break
		}
		if e.matches(q) {
			result = append(result, e)
		}
	}
	return result
}

// ListByCategory returns the entries of a category in catalog order.
func (c Catalog[T]) ListByCategory(category string) []T {
	var result []T
	for _, e := range c.entries {
		if e.group() == category {
			result = append(result, e)
		}
	}
	return result
}

// WithCustom returns a catalog where the given entries precede the existing ones. Custom entries replace the
// existing entries with the same id.
func (c Catalog[T]) WithCustom(custom ...T) Catalog[T] {
	if len(custom) == 0 {
		return c
	}
	shadowed := make(map[string]struct{}, len(custom))
	for _, e := range custom {
		shadowed[e.key()] = struct{}{}
	}
	entries := make([]T, 0, len(custom)+len(c.entries))
	entries = append(entries, custom...)
	for _, e := range c.entries {
		if _, ok := shadowed[e.key()]; !ok {
			entries = append(entries, e)
		}
	}
	return newCatalog(entries)
}

func containsFold(s, lowercaseQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowercaseQuery)
}
