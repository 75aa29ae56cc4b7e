package app

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"swscan/internal/aggregate"
	"swscan/internal/cache"
	"swscan/internal/config"
	"swscan/internal/report"
	"swscan/internal/writers"
)

func (r *runner) aggregate(_ context.Context, cfg config.Config) error {
	log := r.logger(cfg)
	if err := checkInputs(cfg.CacheDir()); err != nil {
		return err
	}
	_, _, err := r.finish(cfg, log)
	return err
}

// finish aggregates the cache into the final table and draws the score
// histogram. It returns the row and file counts.
func (r *runner) finish(cfg config.Config, log logrus.FieldLogger) (int, int, error) {
	rows, st, err := aggregate.Collect(cfg.CacheDir(), log)
	if err != nil {
		return 0, 0, err
	}
	if st.Dropped > 0 {
		log.Infof("dropped %d rows without a score", st.Dropped)
	}
	log.Infof("aggregated %s rows from %d TF files", humanize.Comma(int64(st.Rows)), st.Files)

	log.Infof("writing %s table to %s", cfg.Format, cfg.OutputPath())
	if err := r.writeTable(cfg, rows); err != nil {
		return 0, 0, err
	}

	scores := make([]float64, len(rows))
	for i, row := range rows {
		scores[i] = row.Score
	}
	if len(scores) > 0 {
		if err := report.Histogram(cfg.ScoreHistPath(), "Sliding Window TF-to-Peak Scores", "Score", scores, 50); err != nil {
			log.Warnf("score histogram: %v", err)
		}
	}
	return st.Rows, st.Files, nil
}

func (r *runner) writeTable(cfg config.Config, rows []cache.Row) error {
	dst := cfg.OutputPath()
	if dst == "-" {
		return writers.Write(cfg.Format, r.stdout, rows)
	}
	fh, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := writers.Write(cfg.Format, fh, rows); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := fh.Close(); err != nil {
		return err
	}
	return nil
}
