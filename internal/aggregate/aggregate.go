// Package aggregate concatenates the per-TF cache files into the final
// TF-to-peak score table.
package aggregate

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"swscan/internal/cache"
)

// ErrNoResults means no readable cache file was found.
var ErrNoResults = errors.New("no valid TF score files")

// Stats describes one aggregation.
type Stats struct {
	Files   int // valid files read
	Skipped int // files that failed validation or reading
	Rows    int // rows kept
	Dropped int // NaN rows dropped
}

// ListFiles returns the *.parquet files of dir in lexical order.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), cache.Ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Collect reads every valid cache file in dir, in lexical file order, and
// returns their rows concatenated without NaN scores.
func Collect(dir string, log logrus.FieldLogger) ([]cache.Row, Stats, error) {
	var st Stats
	files, err := ListFiles(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, st, err
	}

	var out []cache.Row
	for _, fn := range files {
		if !cache.ValidFile(fn) {
			log.Warnf("skipping invalid parquet file %s", fn)
			st.Skipped++
			continue
		}
		rows, err := cache.ReadRows(fn)
		if err != nil {
			log.Warnf("skipping unreadable parquet file %s: %v", fn, err)
			st.Skipped++
			continue
		}
		st.Files++
		for _, r := range rows {
			if math.IsNaN(r.Score) {
				st.Dropped++
				continue
			}
			out = append(out, r)
		}
	}
	if st.Files == 0 {
		return nil, st, fmt.Errorf("%w in %s", ErrNoResults, dir)
	}
	st.Rows = len(out)
	return out, st, nil
}
