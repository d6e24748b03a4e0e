package resolve

import "math"

// congruent reports whether a and b differ by a whole number of octaves,
// within tol cents. math.Remainder keeps the test independent of the sign
// of the difference.
func congruent(a, b, tol float64) bool {
	return math.Abs(math.Remainder(a-b, OctaveSize)) <= tol
}

// Reanchor reduces an octave base offset into (-OctaveSize, 0].
func Reanchor(offset float64) float64 {
	r := math.Mod(offset, OctaveSize)
	if r > 0 {
		r -= OctaveSize
	}
	if r == 0 {
		return 0 // drop a negative zero
	}
	return r
}

// Fold maps offset into the one-octave window [base, base+OctaveSize).
func Fold(offset, base float64) float64 {
	rel := math.Mod(offset-base, OctaveSize)
	if rel < 0 {
		rel += OctaveSize
	}
	if rel >= OctaveSize {
		rel = 0
	}
	return base + rel
}

// normalize re-anchors the octave base at base and folds every other
// offset into the octave starting at it.
func normalize(offsets map[string]float64, baseName string, base float64) {
	for name, off := range offsets {
		offsets[name] = Fold(off, base)
	}
	offsets[baseName] = base
}
