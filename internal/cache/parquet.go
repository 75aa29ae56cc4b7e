package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// Ext is the file extension of cache entries.
const Ext = ".parquet"

// ParquetStore keeps each TF in <Dir>/<tf>.parquet.
type ParquetStore struct {
	Dir string
}

// NewParquetStore creates dir if needed.
func NewParquetStore(dir string) (*ParquetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ParquetStore{Dir: dir}, nil
}

// Path is the entry file for tf.
func (s *ParquetStore) Path(tf string) string { return filepath.Join(s.Dir, tf+Ext) }

func (s *ParquetStore) Get(tf string) (Vector, bool) {
	if !s.Valid(tf) {
		return Vector{}, false
	}
	rows, err := ReadRows(s.Path(tf))
	if err != nil {
		return Vector{}, false
	}
	v := Vector{PeakIDs: make([]string, len(rows)), Scores: make([]float64, len(rows))}
	for i, r := range rows {
		v.PeakIDs[i], v.Scores[i] = r.PeakID, r.Score
	}
	return v, true
}

func (s *ParquetStore) Put(tf string, v Vector) error {
	if err := checkPut(tf, v); err != nil {
		return err
	}
	return WriteRows(s.Path(tf), v.Rows(tf))
}

func (s *ParquetStore) Valid(tf string) bool { return ValidFile(s.Path(tf)) }

/* ---------------- file helpers ---------------- */

// ValidFile reports whether path exists and its parquet footer parses.
func ValidFile(path string) bool {
	fh, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = fh.Close() }()
	st, err := fh.Stat()
	if err != nil {
		return false
	}
	_, err = parquet.OpenFile(fh, st.Size())
	return err == nil
}

// ReadRows loads every row of a cache-format parquet file.
func ReadRows(path string) ([]Row, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// WriteRows writes rows as a snappy-compressed parquet file. The file is
// written next to path and renamed into place.
func WriteRows(path string, rows []Row) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*"+Ext+".part")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := EncodeRows(tmp, rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// EncodeRows streams rows to w in parquet format.
func EncodeRows(w io.Writer, rows []Row) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}
