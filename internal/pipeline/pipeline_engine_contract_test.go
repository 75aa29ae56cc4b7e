// internal/pipeline/pipeline_engine_contract_test.go
package pipeline

import (
	"context"
	"strings"
	"testing"

	"swscan/internal/cache"
	"swscan/internal/engine"
	"swscan/internal/pwm"
	"swscan/internal/seqtable"
	"swscan/internal/tfmotif"
)

// Compile-time check: the concrete kernel satisfies the minimal contract.
var _ Scorer = (*engine.Kernel)(nil)

// fake scorer implementing the Scorer interface
type fakeScorer struct{ panicOn int }

func (f fakeScorer) ScoreAll(plus, _ seqtable.Matrix, p pwm.PWM) ([]float64, error) {
	if p.Rows == f.panicOn {
		panic("boom")
	}
	out := make([]float64, plus.Rows)
	for i := range out {
		out[i] = float64(p.Rows)
	}
	return out, nil
}

func TestRun_UsesScorerAndRecoversPanics(t *testing.T) {
	dir := t.TempDir()
	writeMotif(t, dir, "m1.txt", 1) // PWM rows 2
	writeMotif(t, dir, "m2.txt", 2) // PWM rows 3, panics

	sc := newContext(t, tfmotif.FromPairs([]tfmotif.Pair{{TF: "A", Motif: "m1"}, {TF: "B", Motif: "m2"}}), cache.NewMemStore())
	sc.Scorer = fakeScorer{panicOn: 3}
	tasks, err := ListTasks(dir, sc.TFs)
	if err != nil {
		t.Fatal(err)
	}

	var failed []Result
	sum, err := Run(context.Background(), Config{Workers: 2}, sc, tasks, quietLog(), func(r Result) {
		if !r.OK {
			failed = append(failed, r)
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Succeeded != 1 || sum.Failed != 1 {
		t.Fatalf("summary=%+v", sum)
	}
	if len(failed) != 1 || failed[0].Task.Motif != "m2" || !strings.Contains(failed[0].Err.Error(), "panic") {
		t.Fatalf("failed=%+v", failed)
	}
	v, ok := sc.Store.Get("A")
	if !ok || v.Scores[0] != 2 {
		t.Fatalf("A entry=%+v ok=%v", v, ok)
	}
}
