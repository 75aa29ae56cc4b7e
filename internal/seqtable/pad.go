package seqtable

import "swscan/internal/seqcode"

// Matrix is a dense row-major Rows×Cols matrix of base codes.
type Matrix struct {
	Rows int
	Cols int
	Data []int8
}

// Row returns a view of row i.
func (m Matrix) Row(i int) []int8 { return m.Data[i*m.Cols : (i+1)*m.Cols] }

// Pad copies rows into a Matrix as wide as the longest row, filling every
// tail with seqcode.Sentinel.
func Pad(rows [][]int8) Matrix {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	m := Matrix{Rows: len(rows), Cols: cols, Data: make([]int8, len(rows)*cols)}
	for i, r := range rows {
		dst := m.Row(i)
		n := copy(dst, r)
		for j := n; j < cols; j++ {
			dst[j] = seqcode.Sentinel
		}
	}
	return m
}

// Pad returns the padded plus and minus matrices of t.
func (t *Table) Pad() (plus, minus Matrix) {
	return Pad(t.Plus), Pad(t.Minus)
}
