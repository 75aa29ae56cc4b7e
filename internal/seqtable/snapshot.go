package seqtable

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/golang/snappy"
)

// Key identifies the inputs a snapshot was built from.
type Key struct {
	GenomeFiles []string
	PeakIDs     []string
}

// Equal reports whether k and o describe the same inputs.
func (k Key) Equal(o Key) bool {
	return slices.Equal(k.GenomeFiles, o.GenomeFiles) && slices.Equal(k.PeakIDs, o.PeakIDs)
}

type snapshot struct {
	Key   Key
	Table Table
}

// Save writes t with its key as snappy-compressed gob. The file appears
// atomically.
func Save(path string, key Key, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	zw := snappy.NewBufferedWriter(tmp)
	if err := gob.NewEncoder(zw).Encode(snapshot{Key: key, Table: *t}); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a snapshot written by Save.
func Load(path string) (Key, *Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Key{}, nil, err
	}
	defer func() { _ = fh.Close() }()

	var s snapshot
	if err := gob.NewDecoder(snappy.NewReader(fh)).Decode(&s); err != nil {
		return Key{}, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if len(s.Table.Plus) != len(s.Table.PeakIDs) || len(s.Table.Minus) != len(s.Table.PeakIDs) {
		return Key{}, nil, fmt.Errorf("snapshot %s: inconsistent row counts", path)
	}
	return s.Key, &s.Table, nil
}

// Reuse returns the snapshot at path when it loads and was built from key.
func Reuse(path string, key Key) (*Table, bool) {
	k, t, err := Load(path)
	if err != nil || !k.Equal(key) {
		return nil, false
	}
	return t, true
}
