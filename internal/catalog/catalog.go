// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/shelfmatch/internal/validation"
)

var (
	// ErrItemNotFound is returned by explicit single-item lookups.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateItem is returned when two items share an ID.
	ErrDuplicateItem = errors.New("duplicate item id")

	// ErrInvalidItem is returned when an item fails validation.
	ErrInvalidItem = errors.New("invalid item")
)

// Catalog is an immutable, ordered set of items plus the tag universe derived
// from them. All methods are safe for concurrent use because nothing mutates
// after New returns.
type Catalog struct {
	items    []Item
	index    map[int]int // item ID -> position in items
	tags     []string    // first-seen order
	tagIndex map[string]int
}

// New builds a catalog from items, preserving their order. The tag universe
// is computed once here in first-seen order and never changes afterwards.
//
//nolint:gocritic // rangeValCopy: Item is small and copied on purpose
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:    make([]Item, 0, len(items)),
		index:    make(map[int]int, len(items)),
		tagIndex: make(map[string]int),
	}

	for _, item := range items {
		if verr := validation.ValidateStruct(&item); verr != nil {
			return nil, fmt.Errorf("%w: id %d: %s", ErrInvalidItem, item.ID, verr.Error())
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, item.ID)
		}

		item = item.clone()
		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)

		for _, tag := range item.Tags {
			if _, seen := c.tagIndex[tag]; !seen {
				c.tagIndex[tag] = len(c.tags)
				c.tags = append(c.tags, tag)
			}
		}
	}

	return c, nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// AllItems returns every item in catalog order.
func (c *Catalog) AllItems() []Item {
	out := make([]Item, len(c.items))
	for i := range c.items {
		out[i] = c.items[i].clone()
	}
	return out
}

// ItemByID returns the item with the given ID.
func (c *Catalog) ItemByID(id int) (Item, bool) {
	pos, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[pos].clone(), true
}

// Lookup is ItemByID for callers that want an error instead of a flag.
func (c *Catalog) Lookup(id int) (Item, error) {
	item, ok := c.ItemByID(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return item, nil
}

// Contains reports whether id resolves to a catalog item.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the catalog insertion position of id.
// Used as the deterministic tie-break when ranking.
func (c *Catalog) Position(id int) (int, bool) {
	pos, ok := c.index[id]
	return pos, ok
}

// TagUniverse returns the ordered tag axes shared by every tag vector.
func (c *Catalog) TagUniverse() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Dimensions returns the length of every tag vector.
func (c *Catalog) Dimensions() int {
	return len(c.tags)
}

// ItemToVector returns the binary tag-membership vector of item: position i
// is 1 when TagUniverse()[i] is one of the item's tags and 0 otherwise. Tags
// outside the universe (an item that did not come from this catalog) are
// ignored so the vector length is always Dimensions().
//
//nolint:gocritic // hugeParam: Item passed by value to keep the call site simple
func (c *Catalog) ItemToVector(item Item) []float64 {
	vec := make([]float64, len(c.tags))
	for _, tag := range item.Tags {
		if i, ok := c.tagIndex[tag]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// Filter narrows a catalog browse. Empty fields match everything.
type Filter struct {
	Type ItemType `validate:"omitempty,oneof=movie book"`
	Tag  string
}

// Filter returns the items matching f in catalog order.
func (c *Catalog) Filter(f Filter) []Item {
	out := make([]Item, 0, len(c.items))
	for i := range c.items {
		item := &c.items[i]
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if f.Tag != "" && !item.HasTag(f.Tag) {
			continue
		}
		out = append(out, item.clone())
	}
	return out
}
