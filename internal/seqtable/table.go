// Package seqtable builds the encoded peak sequence table: extraction from
// the reference genome, padding into dense matrices, and an on-disk
// snapshot so later runs can skip the genome pass.
package seqtable

// Table is the ordered set of peaks with a sequence, with both strands
// encoded. Row i of Plus, Minus and PeakIDs describe the same peak.
type Table struct {
	PeakIDs []string
	Plus    [][]int8
	Minus   [][]int8
}

// Len is the number of peaks in the table.
func (t *Table) Len() int { return len(t.PeakIDs) }

// Lengths returns every peak's sequence length, in row order.
func (t *Table) Lengths() []int {
	out := make([]int, len(t.Plus))
	for i, r := range t.Plus {
		out[i] = len(r)
	}
	return out
}

// MaxLen is the longest peak sequence, 0 for an empty table.
func (t *Table) MaxLen() int {
	m := 0
	for _, r := range t.Plus {
		if len(r) > m {
			m = len(r)
		}
	}
	return m
}

func (t *Table) add(id string, plus, minus []int8) {
	t.PeakIDs = append(t.PeakIDs, id)
	t.Plus = append(t.Plus, plus)
	t.Minus = append(t.Minus, minus)
}
