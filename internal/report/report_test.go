package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize(Floats([]int{200, 500, 200, 350, 500, 200}))
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 6 || s.Min != 200 || s.Max != 500 || s.Mode != 200 || s.ModeCount != 3 {
		t.Fatalf("summary=%+v", s)
	}
	if s.Mean != 325 {
		t.Fatalf("mean=%v", s.Mean)
	}
	if _, err := Summarize(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("err=%v", err)
	}
}

func TestHistogramWritesPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "figures", "atac_peak_len_hist.png")
	if err := Histogram(fn, "ATAC-seq Peak Length Distribution", "Peak Length", Floats([]int{10, 20, 20, 30, 45}), 50); err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
	if err := Histogram(fn, "", "", nil, 50); !errors.Is(err, ErrNoData) {
		t.Fatalf("empty histogram err=%v", err)
	}
}
