// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package panel holds the fixed reference panel of other users' ratings that
// collaborative filtering correlates the local user against.
//
// Each row of the panel is one reference rater. Row columns are aligned to an
// explicit item-id ordering (ItemIDs), never to numeric adjacency of ids, so
// the panel keeps working if catalog ids become sparse.
package panel

import (
	"errors"
	"fmt"
)

// Rating bounds for panel cells. Zero means unrated.
const (
	Unrated   = 0
	MaxRating = 5
)

// ErrInvalidPanel is returned when panel data is inconsistent.
var ErrInvalidPanel = errors.New("invalid rating panel")

// Rater is one reference rater.
type Rater struct {
	// Index is the row position of the rater in the panel.
	Index int `json:"index"`

	// Ratings holds one value in [0,5] per panel column. 0 = unrated.
	Ratings []int `json:"ratings"`
}

// Panel is an immutable matrix of reference ratings.
type Panel struct {
	itemIDs []int
	columns map[int]int // item ID -> column
	raters  []Rater
}

// New validates rows against itemIDs and returns the panel. Item ids must be
// positive and unique, and every row must have exactly len(itemIDs) cells
// with values in [0,5].
func New(itemIDs []int, rows [][]int) (*Panel, error) {
	p := &Panel{
		itemIDs: append([]int(nil), itemIDs...),
		columns: make(map[int]int, len(itemIDs)),
		raters:  make([]Rater, 0, len(rows)),
	}

	for col, id := range itemIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: item id %d must be positive", ErrInvalidPanel, id)
		}
		if _, dup := p.columns[id]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %d", ErrInvalidPanel, id)
		}
		p.columns[id] = col
	}

	for r, row := range rows {
		if len(row) != len(itemIDs) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPanel, r, len(row), len(itemIDs))
		}
		for c, v := range row {
			if v < Unrated || v > MaxRating {
				return nil, fmt.Errorf("%w: row %d column %d rating %d out of range", ErrInvalidPanel, r, c, v)
			}
		}
		p.raters = append(p.raters, Rater{Index: r, Ratings: append([]int(nil), row...)})
	}

	return p, nil
}

// ItemIDs returns the column-to-item mapping.
func (p *Panel) ItemIDs() []int {
	return append([]int(nil), p.itemIDs...)
}

// IndexOf returns the column that holds ratings for itemID.
func (p *Panel) IndexOf(itemID int) (int, bool) {
	col, ok := p.columns[itemID]
	return col, ok
}

// Columns returns the number of item columns.
func (p *Panel) Columns() int {
	return len(p.itemIDs)
}

// Len returns the number of raters.
func (p *Panel) Len() int {
	return len(p.raters)
}

// Raters returns a deep copy of every rater in row order.
func (p *Panel) Raters() []Rater {
	out := make([]Rater, len(p.raters))
	for i, r := range p.raters {
		out[i] = Rater{Index: r.Index, Ratings: append([]int(nil), r.Ratings...)}
	}
	return out
}
