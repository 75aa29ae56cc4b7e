// internal/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const plain = `>chr1 some description
acgT
NNnn
>chr2
GGCC
`

func writeGz(t *testing.T, path, data string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	_ = gw.Close()
	_ = fh.Close()
}

func collect(t *testing.T, path string) []Record {
	t.Helper()
	var recs []Record
	if err := ForEach(path, func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	return recs
}

func TestForEachPlain(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(fn, []byte(plain), 0o644); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, fn)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "chr1" || string(recs[0].Seq) != "ACGTNNNN" {
		t.Fatalf("bad chr1: %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "chr2" || string(recs[1].Seq) != "GGCC" {
		t.Fatalf("bad chr2: %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestForEachGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa.gz")
	writeGz(t, fn, plain)
	recs := collect(t, fn)
	if len(recs) != 2 || recs[1].ID != "chr2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestForEachStopsOnCallbackError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(fn, []byte(plain), 0o644); err != nil {
		t.Fatal(err)
	}
	stop := errors.New("stop")
	n := 0
	err := ForEach(fn, func(Record) error { n++; return stop })
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("want stop after first record, got n=%d err=%v", n, err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chr2.fa", "chr1.fa.gz", "genome.fasta", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.fa"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"chr1.fa.gz", "chr2.fa", "genome.fasta"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if filepath.Base(got[i]) != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	if err := ForEach(filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil }); err == nil {
		t.Fatal("expected error for missing file")
	}
}
