package pwm

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"swscan/internal/background"
)

func writeMotif(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadMotifColumnsByName(t *testing.T) {
	fn := writeMotif(t, "M0001_1.02.txt", "Pos\tT\tG\tC\tA\n1\t0.1\t0.2\t0.3\t0.4\n2\t0\t0\t0\t1\n")
	m, err := LoadMotif(fn)
	if err != nil {
		t.Fatalf("LoadMotif: %v", err)
	}
	if m.ID != "M0001_1.02" || m.Width() != 2 {
		t.Fatalf("id=%q width=%d", m.ID, m.Width())
	}
	if m.Freq[0] != [4]float64{0.4, 0.3, 0.2, 0.1} || m.Freq[1] != [4]float64{1, 0, 0, 0} {
		t.Fatalf("freq=%v", m.Freq)
	}
}

func TestLoadMotifErrors(t *testing.T) {
	cases := map[string]string{
		"missing.txt":  "Pos\tA\tC\tG\n1\t0.25\t0.25\t0.5\n",
		"nonnum.txt":   "Pos\tA\tC\tG\tT\n1\t0.25\tx\t0.25\t0.25\n",
		"headonly.txt": "Pos\tA\tC\tG\tT\n",
	}
	for name, data := range cases {
		if _, err := LoadMotif(writeMotif(t, name, data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestBuildAppendsZeroRow(t *testing.T) {
	bg := background.Frequencies{0.25, 0.25, 0.25, 0.25}
	p := Build(Motif{Freq: [][4]float64{{0.25, 0.75, 0, 0.5}}}, bg)
	if p.Rows != 2 || len(p.Values) != 8 {
		t.Fatalf("rows=%d len=%d", p.Rows, len(p.Values))
	}
	want := []float64{1, 2, 0, math.Log2(3)}
	for b, w := range want {
		if math.Abs(p.At(0, b)-w) > 1e-12 {
			t.Fatalf("At(0,%d)=%v want %v", b, p.At(0, b), w)
		}
	}
	for b := 0; b < 4; b++ {
		if p.At(1, b) != 0 {
			t.Fatalf("last row not zero: %v", p.Values[4:])
		}
	}
}

func TestBuildUsesBackground(t *testing.T) {
	bg, err := background.For("hg38")
	if err != nil {
		t.Fatal(err)
	}
	p := Build(Motif{Freq: [][4]float64{{0.29182, 0, 0, 0}}}, bg)
	if p.At(0, 0) != 1 {
		t.Fatalf("freq==bg should give log2(2)=1, got %v", p.At(0, 0))
	}
}

func TestMotifID(t *testing.T) {
	cases := map[string]string{
		"/m/M0001_1.02.txt": "M0001_1.02",
		"a.txt.txt":         "a",
		"plain":             "plain",
	}
	for in, want := range cases {
		if got := MotifID(in); got != want {
			t.Fatalf("MotifID(%q)=%q want %q", in, got, want)
		}
	}
}
