// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 1, 0}, []float64{1, 1, 0}, 1},
		{"scaled", []float64{2, 2, 0}, []float64{1, 1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero left", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero right", []float64{1, 1}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 1}, 0},
		{"empty", nil, nil, 0},
		{"three of four", []float64{1, 1, 1, 0}, []float64{1, 1, 1, 1}, 3 / (math.Sqrt(3) * 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got) {
				t.Error("CosineSimilarity() returned NaN")
			}
		})
	}
}

func TestPearsonCorrelation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"perfect", []int{5, 0, 4}, []int{4, 0, 3}, 1},
		{"inverse", []int{5, 0, 4}, []int{3, 0, 5}, -1},
		{"one common item", []int{5, 0, 0}, []int{4, 3, 0}, 0},
		{"no common items", []int{5, 0}, []int{0, 5}, 0},
		{"flat user", []int{3, 3, 3}, []int{1, 4, 5}, 0},
		{"flat rater", []int{1, 4, 5}, []int{2, 2, 2}, 0},
		{"zeros excluded", []int{5, 1, 4}, []int{4, 0, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PearsonCorrelation(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("PearsonCorrelation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPearsonCorrelation_Symmetric(t *testing.T) {
	t.Parallel()

	series := [][]int{
		{5, 4, 0, 2, 5, 0, 4, 0, 3, 0},
		{0, 5, 4, 0, 3, 5, 0, 4, 0, 2},
		{3, 0, 5, 4, 0, 3, 5, 0, 4, 0},
		{0, 4, 0, 5, 4, 0, 3, 5, 0, 4},
		{4, 0, 3, 0, 5, 4, 0, 3, 5, 0},
		{5, 4, 1, 1, 2, 3, 0, 0, 0, 1},
	}

	for i := range series {
		for j := range series {
			ab := PearsonCorrelation(series[i], series[j])
			ba := PearsonCorrelation(series[j], series[i])
			if ab != ba {
				t.Errorf("pearson(%d,%d)=%v != pearson(%d,%d)=%v", i, j, ab, j, i, ba)
			}
			if ab < -1-epsilon || ab > 1+epsilon {
				t.Errorf("pearson(%d,%d)=%v out of range", i, j, ab)
			}
		}
	}
}
