// Package cache keeps one scored peak vector per TF so interrupted or
// repeated runs only recompute what is missing.
package cache

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// Row is one (peak, TF, score) record, the unit of every cache file and of
// the final table.
type Row struct {
	PeakID   string  `parquet:"peak_id"`
	SourceID string  `parquet:"source_id"`
	Score    float64 `parquet:"sliding_window_score"`
}

// Vector is a peak-indexed score vector for one TF.
type Vector struct {
	PeakIDs []string
	Scores  []float64
}

// Rows flattens v into records for tf, dropping NaN scores.
func (v Vector) Rows(tf string) []Row {
	out := make([]Row, 0, len(v.Scores))
	for i, s := range v.Scores {
		if math.IsNaN(s) {
			continue
		}
		out = append(out, Row{PeakID: v.PeakIDs[i], SourceID: tf, Score: s})
	}
	return out
}

// Store is the per-TF cache. Implementations must be safe for concurrent
// use by distinct TF names.
type Store interface {
	// Get returns the cached vector for tf. Missing or unreadable entries
	// report false.
	Get(tf string) (Vector, bool)
	// Put replaces the entry for tf.
	Put(tf string, v Vector) error
	// Valid reports whether tf has a readable entry.
	Valid(tf string) bool
}

// ErrBadName is returned by Put for names that cannot be used as an entry key.
var ErrBadName = errors.New("cache: invalid TF name")

func checkPut(tf string, v Vector) error {
	if tf == "" || tf == "." || tf == ".." || strings.ContainsAny(tf, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, tf)
	}
	if len(v.PeakIDs) != len(v.Scores) {
		return fmt.Errorf("cache: %s: %d peak ids for %d scores", tf, len(v.PeakIDs), len(v.Scores))
	}
	return nil
}

// MemStore is an in-memory Store, used where no files should be written.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]Vector
}

func NewMemStore() *MemStore { return &MemStore{m: make(map[string]Vector)} }

func (s *MemStore) Get(tf string) (Vector, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[tf]
	return v, ok
}

func (s *MemStore) Put(tf string, v Vector) error {
	if err := checkPut(tf, v); err != nil {
		return err
	}
	cp := Vector{PeakIDs: make([]string, 0, len(v.PeakIDs)), Scores: make([]float64, 0, len(v.Scores))}
	for i, sc := range v.Scores {
		if math.IsNaN(sc) {
			continue
		}
		cp.PeakIDs = append(cp.PeakIDs, v.PeakIDs[i])
		cp.Scores = append(cp.Scores, sc)
	}
	s.mu.Lock()
	s.m[tf] = cp
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Valid(tf string) bool {
	_, ok := s.Get(tf)
	return ok
}

// Names lists the stored TF names in no particular order.
func (s *MemStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	return out
}
