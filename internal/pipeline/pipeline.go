// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"swscan/internal/background"
	"swscan/internal/cache"
	"swscan/internal/pwm"
	"swscan/internal/seqtable"
	"swscan/internal/tfmotif"
)

// Config controls the worker pool.
type Config struct {
	Workers int // number of worker goroutines (>=1)
}

// ScanContext is the read-only input shared by every worker. It must not
// be modified once Run starts.
type ScanContext struct {
	Plus       seqtable.Matrix
	Minus      seqtable.Matrix
	PeakIDs    []string // row order of Plus and Minus
	TFs        *tfmotif.Table
	Background background.Frequencies
	Store      cache.Store
	Scorer     Scorer
}

func (sc *ScanContext) validate() error {
	switch {
	case sc.TFs == nil:
		return errors.New("pipeline: nil TF table")
	case sc.Store == nil:
		return errors.New("pipeline: nil cache store")
	case sc.Scorer == nil:
		return errors.New("pipeline: nil scorer")
	case sc.Plus.Rows != len(sc.PeakIDs):
		return fmt.Errorf("pipeline: %d matrix rows for %d peak ids", sc.Plus.Rows, len(sc.PeakIDs))
	}
	return nil
}

// Result is the outcome of one task. It never carries the score vector;
// scores go straight to the cache store.
type Result struct {
	Task Task
	OK   bool
	Err  error
	TFs  []string // TF entries written
}

// Summary counts task outcomes of one Run.
type Summary struct {
	Scheduled int
	Succeeded int
	Failed    int
	Entries   int // cache entries written
}

// Run scores tasks on cfg.Workers goroutines. Failed tasks are logged and
// counted; the others continue. onResult, if non-nil, is called from a
// single goroutine for every finished task. Cancelling ctx stops new tasks
// from starting; running ones finish. The returned error is ctx.Err() or a
// setup error, never a task failure.
func Run(
	ctx context.Context,
	cfg Config,
	sc *ScanContext,
	tasks []Task,
	log logrus.FieldLogger,
	onResult func(Result),
) (Summary, error) {
	if err := sc.validate(); err != nil {
		return Summary{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	jobs := make(chan Task, cfg.Workers*2)
	results := make(chan Result, cfg.Workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		wk := &worker{sc: sc, log: log}
		go func() {
			defer wg.Done()
			for t := range jobs {
				results <- wk.process(t)
			}
		}()
	}

	// Collector
	var (
		sum Summary
		cwg sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			sum.Scheduled++
			if r.OK {
				sum.Succeeded++
			} else {
				sum.Failed++
			}
			sum.Entries += len(r.TFs)
			if onResult != nil {
				onResult(r)
			}
		}
	}()

	// Feed work
feed:
	for _, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- t:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	return sum, ctx.Err()
}

type worker struct {
	sc  *ScanContext
	log logrus.FieldLogger
}

// process runs one task. Errors and panics become a failed Result.
func (w *worker) process(t Task) (res Result) {
	res.Task = t
	log := w.log.WithField("motif", t.Motif)
	defer func() {
		if p := recover(); p != nil {
			res.OK = false
			res.Err = fmt.Errorf("panic: %v", p)
		}
		if res.Err != nil {
			log.Errorf("error processing %s: %v", t.Path, res.Err)
		}
	}()

	m, err := pwm.LoadMotif(t.Path)
	if err != nil {
		res.Err = err
		return res
	}
	scores, err := w.sc.Scorer.ScoreAll(w.sc.Plus, w.sc.Minus, pwm.Build(m, w.sc.Background))
	if err != nil {
		res.Err = err
		return res
	}
	if len(scores) != len(w.sc.PeakIDs) {
		res.Err = fmt.Errorf("scorer returned %d scores for %d peaks", len(scores), len(w.sc.PeakIDs))
		return res
	}

	vec := cache.Vector{PeakIDs: w.sc.PeakIDs, Scores: scores}
	var errs []error
	for _, tf := range w.sc.TFs.TFs(t.Motif) {
		if err := w.sc.Store.Put(tf, vec); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tf, err))
			continue
		}
		res.TFs = append(res.TFs, tf)
	}
	if len(errs) > 0 {
		res.Err = errors.Join(errs...)
		return res
	}
	log.Debugf("wrote %d TF entries", len(res.TFs))
	res.OK = true
	return res
}
