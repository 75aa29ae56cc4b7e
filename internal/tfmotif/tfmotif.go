// Package tfmotif holds the many-to-many association between TF names and
// motif IDs, restricted to the TFs expressed in the dataset.
package tfmotif

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	ColTF    = "TF_Name"
	ColMotif = "Motif_ID"
)

// Table maps motif IDs to the TF names bound by them. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	byMotif map[string][]string
	motifs  []string // first-occurrence order
	tfs     map[string]struct{}
	rows    int
}

// Pair is one (TF, motif) association.
type Pair struct {
	TF    string
	Motif string
}

// Load reads a tab-separated TF information file with a header row and
// keeps the rows whose TF_Name is in genes. Other columns are ignored.
func Load(path string, genes []string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	df := dataframe.ReadCSV(fh,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("tf table %s: %w", path, df.Err)
	}
	names := map[string]bool{}
	for _, n := range df.Names() {
		names[n] = true
	}
	if !names[ColTF] || !names[ColMotif] {
		return nil, fmt.Errorf("tf table %s: need columns %q and %q", path, ColTF, ColMotif)
	}
	if len(genes) == 0 {
		return FromPairs(nil), nil
	}

	df = df.Filter(dataframe.F{Colname: ColTF, Comparator: series.In, Comparando: genes})
	if df.Err != nil {
		return nil, fmt.Errorf("tf table %s: filter: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return FromPairs(nil), nil
	}
	tfs := df.Col(ColTF).Records()
	motifs := df.Col(ColMotif).Records()
	pairs := make([]Pair, len(tfs))
	for i := range tfs {
		pairs[i] = Pair{TF: tfs[i], Motif: motifs[i]}
	}
	return FromPairs(pairs), nil
}

// FromPairs builds a Table from explicit associations. Duplicate pairs
// collapse to one.
func FromPairs(pairs []Pair) *Table {
	t := &Table{
		byMotif: make(map[string][]string),
		tfs:     make(map[string]struct{}),
		rows:    len(pairs),
	}
	seen := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		if p.TF == "" || p.Motif == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := t.byMotif[p.Motif]; !ok {
			t.motifs = append(t.motifs, p.Motif)
		}
		t.byMotif[p.Motif] = append(t.byMotif[p.Motif], p.TF)
		t.tfs[p.TF] = struct{}{}
	}
	return t
}

// TFs returns the TF names for motif in table order. The slice is shared;
// callers must not modify it.
func (t *Table) TFs(motif string) []string { return t.byMotif[motif] }

// Has reports whether motif is associated with at least one TF.
func (t *Table) Has(motif string) bool { return len(t.byMotif[motif]) > 0 }

// Motifs lists the motif IDs in first-occurrence order.
func (t *Table) Motifs() []string { return append([]string(nil), t.motifs...) }

// TFNames lists the distinct TF names, sorted.
func (t *Table) TFNames() []string {
	out := make([]string, 0, len(t.tfs))
	for tf := range t.tfs {
		out = append(out, tf)
	}
	sort.Strings(out)
	return out
}

// NumRows is the number of input rows after gene filtering.
func (t *Table) NumRows() int { return t.rows }
