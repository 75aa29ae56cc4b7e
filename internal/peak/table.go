package peak

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/parquet-go/parquet-go"
)

// Table holds the unique peak IDs and unique target genes of a peak/gene
// table, both in first-occurrence order.
type Table struct {
	PeakIDs []string
	Genes   []string
}

const (
	colPeak   = "peak_id"
	colTarget = "target_id"
)

type tableRow struct {
	PeakID   string `parquet:"peak_id,optional"`
	TargetID string `parquet:"target_id,optional"`
}

// LoadTable reads a peak/gene table. Files ending in .parquet are read as
// parquet; anything else is delimited text (tab, or comma for .csv) with a
// header row. Both need the peak_id and target_id columns.
func LoadTable(path string) (Table, error) {
	var (
		peaks, genes []string
		err          error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		peaks, genes, err = loadParquet(path)
	case ".csv":
		peaks, genes, err = loadDelimited(path, ',')
	default:
		peaks, genes, err = loadDelimited(path, '\t')
	}
	if err != nil {
		return Table{}, fmt.Errorf("peak table %s: %w", path, err)
	}
	return Table{PeakIDs: unique(peaks), Genes: unique(genes)}, nil
}

func loadParquet(path string) ([]string, []string, error) {
	rows, err := parquet.ReadFile[tableRow](path)
	if err != nil {
		return nil, nil, err
	}
	peaks := make([]string, len(rows))
	genes := make([]string, len(rows))
	for i, r := range rows {
		peaks[i], genes[i] = r.PeakID, r.TargetID
	}
	return peaks, genes, nil
}

func loadDelimited(path string, delim rune) ([]string, []string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()

	df := dataframe.ReadCSV(fh,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, nil, df.Err
	}
	if !hasColumns(df.Names(), colPeak, colTarget) {
		return nil, nil, fmt.Errorf("need columns %q and %q, have %v", colPeak, colTarget, df.Names())
	}
	return df.Col(colPeak).Records(), df.Col(colTarget).Records(), nil
}

func hasColumns(names []string, want ...string) bool {
	have := make(map[string]struct{}, len(names))
	for _, n := range names {
		have[n] = struct{}{}
	}
	for _, w := range want {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}

// unique keeps the first occurrence of each non-empty value.
func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
