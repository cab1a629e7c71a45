// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import "math"

// MinCommonItems is the fewest co-rated positions Pearson needs.
const MinCommonItems = 2

// CosineSimilarity computes dot(a,b) / (|a|*|b|).
// Returns 0 when either vector has zero magnitude or lengths differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// PearsonCorrelation computes the Pearson correlation of a and b restricted
// to positions where both are nonzero (0 means unrated).
//
// Returns 0 when there are fewer than MinCommonItems common positions or when
// either series has zero variance over them. The result is symmetric in a and b.
func PearsonCorrelation(a, b []int) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var common []int
	for i := 0; i < n; i++ {
		if a[i] != 0 && b[i] != 0 {
			common = append(common, i)
		}
	}
	if len(common) < MinCommonItems {
		return 0
	}

	var sumA, sumB float64
	for _, i := range common {
		sumA += float64(a[i])
		sumB += float64(b[i])
	}
	meanA := sumA / float64(len(common))
	meanB := sumB / float64(len(common))

	var num, varA, varB float64
	for _, i := range common {
		da := float64(a[i]) - meanA
		db := float64(b[i]) - meanB
		num += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	return num / math.Sqrt(varA*varB)
}
