package engine

import (
	"fmt"

	"swscan/internal/pwm"
	"swscan/internal/seqtable"
)

// Kernel scores padded peak matrices against a PWM. It holds no state and
// is safe for concurrent use.
type Kernel struct{}

func New() *Kernel { return &Kernel{} }

/* -------------------------------------------------------------------------- */
/*                                 ScoreAll                                   */
/* -------------------------------------------------------------------------- */

// ScoreAll returns one score per peak row: the sum of every window sum over
// the plus row followed by every window sum over the minus row. plus and
// minus must have the same shape.
func (k *Kernel) ScoreAll(plus, minus seqtable.Matrix, p pwm.PWM) ([]float64, error) {
	if plus.Rows != minus.Rows || plus.Cols != minus.Cols {
		return nil, fmt.Errorf("strand shape mismatch: plus %dx%d, minus %dx%d",
			plus.Rows, plus.Cols, minus.Rows, minus.Cols)
	}
	if len(plus.Data) != plus.Rows*plus.Cols || len(minus.Data) != minus.Rows*minus.Cols {
		return nil, fmt.Errorf("matrix data does not match %dx%d", plus.Rows, plus.Cols)
	}
	if p.Rows < 1 || len(p.Values) != p.Rows*4 {
		return nil, fmt.Errorf("pwm has %d values for %d rows", len(p.Values), p.Rows)
	}

	out := make([]float64, plus.Rows)
	for i := range out {
		out[i] = Score(plus.Row(i), minus.Row(i), p)
	}
	return out, nil
}

/* -------------------------------------------------------------------------- */
/*                                   Score                                    */
/* -------------------------------------------------------------------------- */

// Score scans a single peak. Windows run over the full row length, so rows
// shorter than the PWM score 0. Codes outside 0..3 contribute nothing.
func Score(plus, minus []int8, p pwm.PWM) float64 {
	total := 0.0
	total = scanInto(total, plus, p.Values, p.Rows)
	total = scanInto(total, minus, p.Values, p.Rows)
	return total
}

// scanInto adds every window sum of row to total, window by window.
func scanInto(total float64, row []int8, w []float64, wsize int) float64 {
	last := len(row) - wsize
	for j := 0; j <= last; j++ {
		win := row[j : j+wsize]
		s := 0.0
		for k, c := range win {
			if uint8(c) < 4 {
				s += w[k*4+int(c)]
			}
		}
		total += s
	}
	return total
}
