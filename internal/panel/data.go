// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package panel

// defaultItemIDs maps panel columns to catalog item ids.
var defaultItemIDs = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

var defaultRows = [][]int{
	{5, 4, 0, 2, 5, 0, 4, 0, 3, 0},
	{0, 5, 4, 0, 3, 5, 0, 4, 0, 2},
	{3, 0, 5, 4, 0, 3, 5, 0, 4, 0},
	{0, 4, 0, 5, 4, 0, 3, 5, 0, 4},
	{4, 0, 3, 0, 5, 4, 0, 3, 5, 0},
}

// Default returns the compiled-in five-rater panel.
func Default() *Panel {
	p, err := New(defaultItemIDs, defaultRows)
	if err != nil {
		panic("panel: invalid default data: " + err.Error())
	}
	return p
}
