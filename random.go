package imgpoison

import "math/rand/v2"

// Source is the randomness consumed by Embed and Concatenate.
// *rand.Rand from math/rand/v2 satisfies it, so a seeded generator can be
// injected for reproducible output.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the global math/rand/v2 generator and is safe for
// concurrent use.
var DefaultSource Source = globalSource{}

func sourceOrDefault(src Source) Source {
	if src == nil {
		return DefaultSource
	}
	return src
}

// randRange returns a uniform int in [min, max] inclusive.
func randRange(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return src.IntN(max-min+1) + min
}
