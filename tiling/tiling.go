// Package tiling provides the quantizer and coordinate generator for
// generalized tile coding.
//
// A point in continuous space is quantized to tile-width units, then each
// of numTilings overlapping grids observes it at a diagonal offset. The
// resulting coordinate vectors are the integer keys that the index
// assignment engines reduce to feature indices.
package tiling

import "math"

// Quantize converts each value into tile-width units: floor(x * numTilings),
// flooring toward negative infinity. Negative, zero, and arbitrarily large
// magnitudes are all valid.
//
// numTilings must be >= 1; callers validate before quantizing.
func Quantize(values []float64, numTilings int) []int64 {
	quantized := make([]int64, len(values))
	for i, v := range values {
		quantized[i] = int64(math.Floor(v * float64(numTilings)))
	}
	return quantized
}

// Coordinates computes the coordinate vector of the tile activated by the
// quantized point in tiling number `tiling` (0-based, < numTilings).
//
// Each tiling is displaced from its neighbor by the odd-number scheme: the
// running displacement starts at `tiling` and grows by 2*tiling per
// dimension, shifting every tiling diagonally by one unit relative to the
// previous one.
//
// The vector layout is [tiling, dims..., tags...]. The leading tiling
// ordinal keeps identical offsets in different tilings from colliding; the
// trailing tags are appended verbatim so that distinct discrete contexts
// (e.g. actions) occupy disjoint tilings.
func Coordinates(tiling, numTilings int, quantized []int64, tags []int64) []int64 {
	coords := make([]int64, 0, 1+len(quantized)+len(tags))
	coords = append(coords, int64(tiling))

	b := int64(tiling)
	n := int64(numTilings)
	for _, q := range quantized {
		coords = append(coords, floorDiv(q+b, n))
		b += int64(2 * tiling)
	}

	return append(coords, tags...)
}

// WrapCoordinates is the wrap-around sibling of Coordinates. For each
// dimension i with wrapWidths[i] > 0 the coordinate is reduced to
// [0, wrapWidths[i]), so a value v and v + width land on the same tile.
// A width of 0 leaves that dimension unwrapped; wrapped and unwrapped
// dimensions may be mixed.
//
// For wrapped dimensions the displacement is reduced mod numTilings before
// combining, so that wrap boundaries stay aligned across displaced tilings
// and points near 0 generalize to points near the width.
//
// len(wrapWidths) must equal len(quantized); callers validate.
func WrapCoordinates(tiling, numTilings int, quantized []int64, wrapWidths []int, tags []int64) []int64 {
	coords := make([]int64, 0, 1+len(quantized)+len(tags))
	coords = append(coords, int64(tiling))

	b := int64(tiling)
	n := int64(numTilings)
	for i, q := range quantized {
		if w := int64(wrapWidths[i]); w > 0 {
			c := floorDiv(q+floorMod(b, n), n)
			coords = append(coords, floorMod(c, w))
		} else {
			coords = append(coords, floorDiv(q+b, n))
		}
		b += int64(2 * tiling)
	}

	return append(coords, tags...)
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating / operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod reduces a into [0, m) for m > 0.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
