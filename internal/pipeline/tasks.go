package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"swscan/internal/cache"
	"swscan/internal/pwm"
	"swscan/internal/tfmotif"
)

// Task is one motif file to score.
type Task struct {
	Motif string // motif ID
	Path  string
}

// ListTasks returns a task for every *.txt file in dir whose motif ID is in
// tfs, in lexical file order.
func ListTasks(dir string, tfs *tfmotif.Table) ([]Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []Task
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), pwm.Ext) {
			continue
		}
		id := pwm.MotifID(e.Name())
		if !tfs.Has(id) {
			continue
		}
		out = append(out, Task{Motif: id, Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Pending drops the tasks whose TFs all have a valid cache entry.
func Pending(tasks []Task, tfs *tfmotif.Table, store cache.Store) []Task {
	var out []Task
	for _, t := range tasks {
		done := true
		for _, tf := range tfs.TFs(t.Motif) {
			if !store.Valid(tf) {
				done = false
				break
			}
		}
		if !done {
			out = append(out, t)
		}
	}
	return out
}
