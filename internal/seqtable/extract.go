package seqtable

import (
	"github.com/sirupsen/logrus"

	"swscan/internal/fasta"
	"swscan/internal/peak"
	"swscan/internal/seqcode"
)

// Extract reads the genome files in the given order and slices every peak
// out of its chromosome. Rows follow file order, then record order, then
// peak order within a chromosome. Peaks whose chromosome is in none of the
// files are left out. Coordinates past the chromosome end are truncated.
func Extract(files []string, peaks []peak.Peak, log logrus.FieldLogger) (*Table, error) {
	byChrom := make(map[string][]int)
	for i, p := range peaks {
		byChrom[p.Chrom] = append(byChrom[p.Chrom], i)
	}

	t := &Table{}
	done := make(map[string]string) // chrom -> file it came from
	for _, fn := range files {
		err := fasta.ForEach(fn, func(rec fasta.Record) error {
			idx, ok := byChrom[rec.ID]
			if !ok {
				return nil
			}
			if first, dup := done[rec.ID]; dup {
				log.WithField("file", fn).Warnf("chromosome %s already read from %s; ignoring", rec.ID, first)
				return nil
			}
			done[rec.ID] = fn
			for _, i := range idx {
				p := peaks[i]
				s := slice(rec.Seq, p.Start, p.End)
				t.add(p.ID(), seqcode.Encode(s), seqcode.EncodeComplement(s))
			}
			log.Debugf("%s: %d peaks", rec.ID, len(idx))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func slice(seq []byte, start, end int) []byte {
	if start > len(seq) {
		start = len(seq)
	}
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}
