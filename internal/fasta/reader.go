// internal/fasta/reader.go
package fasta

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry (whole chromosome or contig).
type Record struct {
	ID  string
	Seq []byte // upper-case, no newlines
}

// ForEach reads path ('-' for stdin, '.gz' transparently) and calls fn for
// every record in file order. It stops at the first error from the reader
// or from fn.
func ForEach(path string, fn func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	r := biofasta.NewReader(rc, linear.NewSeq("", nil, alphabet.DNAredundant))
	for {
		s, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fasta %s: %w", path, err)
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta %s: unexpected sequence type %T", path, s)
		}
		if err := fn(Record{ID: ls.Name(), Seq: upper(ls.Seq)}); err != nil {
			return err
		}
	}
}

// ListFiles returns the reference files of dir, in lexical order. A file
// qualifies when its name contains ".fa" (.fa, .fasta, .fa.gz, ...).
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), ".fa") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func upper(l alphabet.Letters) []byte {
	out := make([]byte, len(l))
	for i, c := range l {
		b := byte(c)
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

/* ---------------- small helpers ---------------- */

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
