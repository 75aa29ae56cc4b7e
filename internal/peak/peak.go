// Package peak handles accessible-chromatin peak identifiers of the form
// "chrom:start-end" (half-open, strand agnostic) and the peak/gene table
// that lists them.
package peak

import (
	"fmt"
	"strconv"
	"strings"
)

// Peak is one genomic interval [Start, End) on Chrom.
type Peak struct {
	Chrom string
	Start int
	End   int
}

// Parse splits a "chrom:start-end" identifier. The chromosome name may
// itself contain ':'; the last one separates the coordinates.
func Parse(id string) (Peak, error) {
	colon := strings.LastIndexByte(id, ':')
	if colon <= 0 {
		return Peak{}, fmt.Errorf("peak %q: missing chrom:start-end", id)
	}
	coords := id[colon+1:]
	dash := strings.IndexByte(coords, '-')
	if dash < 0 {
		return Peak{}, fmt.Errorf("peak %q: missing '-' between coordinates", id)
	}
	start, err := strconv.Atoi(coords[:dash])
	if err != nil {
		return Peak{}, fmt.Errorf("peak %q: bad start: %v", id, err)
	}
	end, err := strconv.Atoi(coords[dash+1:])
	if err != nil {
		return Peak{}, fmt.Errorf("peak %q: bad end: %v", id, err)
	}
	if start < 0 || end < start {
		return Peak{}, fmt.Errorf("peak %q: invalid interval", id)
	}
	return Peak{Chrom: id[:colon], Start: start, End: end}, nil
}

// ID formats p back into its identifier.
func (p Peak) ID() string {
	return p.Chrom + ":" + strconv.Itoa(p.Start) + "-" + strconv.Itoa(p.End)
}

// Len is the nominal interval length.
func (p Peak) Len() int { return p.End - p.Start }

// ParseAll parses ids in order. Unparseable identifiers are skipped and
// returned separately so the caller can report them.
func ParseAll(ids []string) (peaks []Peak, bad []string) {
	peaks = make([]Peak, 0, len(ids))
	for _, id := range ids {
		p, err := Parse(id)
		if err != nil {
			bad = append(bad, id)
			continue
		}
		peaks = append(peaks, p)
	}
	return peaks, bad
}
