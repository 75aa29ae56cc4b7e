// Package pwm loads motif probability matrices and turns them into
// log-odds position weight matrices against a background.
package pwm

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"swscan/internal/background"
)

// Ext is the motif file extension; the motif ID is the file name without it.
const Ext = ".txt"

var bases = [4]string{"A", "C", "G", "T"}

// Motif is a width×4 matrix of base probabilities in A,C,G,T order.
type Motif struct {
	ID   string
	Freq [][4]float64
}

// Width is the number of motif positions.
func (m Motif) Width() int { return len(m.Freq) }

// PWM is a flat row-major Rows×4 log-odds matrix. The last row is all
// zeros, so Rows == motif width + 1.
type PWM struct {
	Rows   int
	Values []float64
}

// At returns the weight of base b (0..3) at row k.
func (p PWM) At(k, b int) float64 { return p.Values[k*4+b] }

// MotifID derives the motif ID from a motif file name by removing every
// occurrence of the extension.
func MotifID(file string) string {
	return strings.ReplaceAll(filepath.Base(file), Ext, "")
}

// LoadMotif reads a tab-separated motif file with a header row. The first
// column is the position index; columns A, C, G and T are matched by name.
func LoadMotif(path string) (Motif, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Motif{}, err
	}
	defer func() { _ = fh.Close() }()

	df := dataframe.ReadCSV(fh,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return Motif{}, fmt.Errorf("motif %s: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return Motif{}, fmt.Errorf("motif %s: no positions", path)
	}
	have := map[string]bool{}
	for _, n := range df.Names() {
		have[n] = true
	}

	freq := make([][4]float64, df.Nrow())
	for b, name := range bases {
		if !have[name] {
			return Motif{}, fmt.Errorf("motif %s: missing column %q", path, name)
		}
		col := df.Col(name)
		vals := col.Float()
		raw := col.Records()
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Motif{}, fmt.Errorf("motif %s: row %d column %s: bad value %q", path, i+1, name, raw[i])
			}
			freq[i][b] = v
		}
	}
	return Motif{ID: MotifID(path), Freq: freq}, nil
}

// Build converts m into log-odds: log2(freq/bg + 1), then appends a zero row.
func Build(m Motif, bg background.Frequencies) PWM {
	rows := m.Width() + 1
	vals := make([]float64, rows*4)
	for i, row := range m.Freq {
		for b := 0; b < 4; b++ {
			vals[i*4+b] = math.Log2(row[b]/bg[b] + 1)
		}
	}
	return PWM{Rows: rows, Values: vals}
}
