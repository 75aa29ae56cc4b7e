package writers

import (
	"bufio"
	"io"
	"strconv"

	"swscan/internal/cache"
)

func init() {
	Register("parquet", ".parquet", cache.EncodeRows)
	Register("tsv", ".tsv", writeTSV)
}

const tsvHeader = "peak_id\tsource_id\tsliding_window_score\n"

func writeTSV(w io.Writer, rows []cache.Row) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(tsvHeader); err != nil {
		return err
	}
	buf := make([]byte, 0, 128)
	for _, r := range rows {
		buf = buf[:0]
		buf = append(buf, r.PeakID...)
		buf = append(buf, '\t')
		buf = append(buf, r.SourceID...)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, r.Score, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
