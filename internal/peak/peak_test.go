package peak

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestParse(t *testing.T) {
	cases := []struct {
		id   string
		want Peak
		ok   bool
	}{
		{"chr1:100-250", Peak{"chr1", 100, 250}, true},
		{"chrUn:KI270:5-9", Peak{"chrUn:KI270", 5, 9}, true},
		{"chr2:7-7", Peak{"chr2", 7, 7}, true},
		{"chr1-100-250", Peak{}, false},
		{"chr1:100", Peak{}, false},
		{"chr1:x-5", Peak{}, false},
		{"chr1:9-5", Peak{}, false},
		{":1-2", Peak{}, false},
	}
	for _, c := range cases {
		got, err := Parse(c.id)
		if (err == nil) != c.ok {
			t.Fatalf("Parse(%q) err=%v, want ok=%v", c.id, err, c.ok)
		}
		if c.ok && got != c.want {
			t.Fatalf("Parse(%q)=%+v want %+v", c.id, got, c.want)
		}
		if c.ok && got.ID() != c.id {
			t.Fatalf("ID round trip: %q -> %q", c.id, got.ID())
		}
	}
}

func TestParseAll(t *testing.T) {
	peaks, bad := ParseAll([]string{"chr1:0-10", "junk", "chr2:5-6"})
	if len(peaks) != 2 || peaks[1].Len() != 1 {
		t.Fatalf("peaks=%+v", peaks)
	}
	if !reflect.DeepEqual(bad, []string{"junk"}) {
		t.Fatalf("bad=%v", bad)
	}
}

func TestLoadTableTSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tss.tsv")
	data := "peak_id\ttarget_id\tscore\n" +
		"chr1:10-20\tGATA1\t0.5\n" +
		"chr1:10-20\tTAL1\t0.1\n" +
		"chr2:0-5\tGATA1\t0.9\n"
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	tab, err := LoadTable(fn)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if !reflect.DeepEqual(tab.PeakIDs, []string{"chr1:10-20", "chr2:0-5"}) {
		t.Fatalf("peaks=%v", tab.PeakIDs)
	}
	if !reflect.DeepEqual(tab.Genes, []string{"GATA1", "TAL1"}) {
		t.Fatalf("genes=%v", tab.Genes)
	}
}

func TestLoadTableMissingColumn(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tss.csv")
	if err := os.WriteFile(fn, []byte("peak_id,gene\nchr1:1-2,A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(fn); err == nil {
		t.Fatal("expected error for missing target_id column")
	}
}

func TestLoadTableParquet(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tss.parquet")
	rows := []tableRow{
		{PeakID: "chr3:1-9", TargetID: "SOX2"},
		{PeakID: "chr3:1-9", TargetID: "SOX2"},
		{PeakID: "chr1:4-8", TargetID: "MYC"},
	}
	if err := parquet.WriteFile(fn, rows); err != nil {
		t.Fatalf("write parquet: %v", err)
	}
	tab, err := LoadTable(fn)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if !reflect.DeepEqual(tab.PeakIDs, []string{"chr3:1-9", "chr1:4-8"}) {
		t.Fatalf("peaks=%v", tab.PeakIDs)
	}
	if !reflect.DeepEqual(tab.Genes, []string{"SOX2", "MYC"}) {
		t.Fatalf("genes=%v", tab.Genes)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "none.parquet")); err == nil {
		t.Fatal("expected error")
	}
}
