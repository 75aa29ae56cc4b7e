package runinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteRead(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tmp", FileName)
	in := &Info{
		Version:   "dev",
		Command:   "score",
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Elapsed:   "1.5s",
		Species:   "hg38",
		Peaks:     10,
		Scheduled: 3,
		Failed:    1,
		Output:    "out.parquet",
	}
	if err := Write(fn, in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	raw, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "tasks-scheduled = 3") {
		t.Fatalf("unexpected toml:\n%s", raw)
	}
	out, err := Read(fn)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Species != "hg38" || out.Peaks != 10 || out.Failed != 1 || !out.StartedAt.Equal(in.StartedAt) {
		t.Fatalf("read back %+v", out)
	}
}
