package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"swscan/internal/background"
	"swscan/internal/cache"
	"swscan/internal/cmdutil"
	"swscan/internal/config"
	"swscan/internal/engine"
	"swscan/internal/fasta"
	"swscan/internal/peak"
	"swscan/internal/pipeline"
	"swscan/internal/report"
	"swscan/internal/runinfo"
	"swscan/internal/seqtable"
	"swscan/internal/tfmotif"
	"swscan/internal/version"
)

type runner struct {
	stdout io.Writer
	stderr io.Writer
}

func (r *runner) logger(cfg config.Config) *logrus.Logger {
	return cmdutil.NewLogger(r.stderr, cfg.Quiet, cfg.Verbose)
}

// checkInputs fails before any work when a required path is absent.
func checkInputs(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrMissingInput, p)
			}
			return err
		}
	}
	return nil
}

func (r *runner) score(ctx context.Context, cfg config.Config) error {
	start := time.Now()
	log := r.logger(cfg)

	if err := checkInputs(cfg.PeakTable, cfg.TFNamesFile, cfg.MotifDir, cfg.GenomeDir); err != nil {
		return err
	}
	bg, err := background.For(cfg.Species)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	info := &runinfo.Info{
		Version: version.Version, Command: "score", StartedAt: start,
		Species: cfg.Species, PeakTable: cfg.PeakTable, TFNamesFile: cfg.TFNamesFile,
		MotifDir: cfg.MotifDir, GenomeDir: cfg.GenomeDir, Workers: workers,
	}

	log.Infof("reading peaks and genes from %s", cfg.PeakTable)
	pt, err := peak.LoadTable(cfg.PeakTable)
	if err != nil {
		return err
	}
	info.Peaks = len(pt.PeakIDs)

	tab, err := r.sequences(cfg, pt.PeakIDs, log)
	if err != nil {
		return err
	}
	info.PeaksFound, info.MaxPeakLen = tab.Len(), tab.MaxLen()

	log.Info("preparing for parallel motif scoring")
	tfs, err := tfmotif.Load(cfg.TFNamesFile, pt.Genes)
	if err != nil {
		return err
	}
	info.TFRows, info.Motifs = tfs.NumRows(), len(tfs.Motifs())
	log.Infof("number of TFs matching RNA dataset = %d", tfs.NumRows())
	log.Infof("number of motifs: %d", len(tfs.Motifs()))
	log.Infof("number of peaks: %s", humanize.Comma(int64(tab.Len())))
	log.Infof("maximum peak length: %d bp", tab.MaxLen())

	store, err := cache.NewParquetStore(cfg.CacheDir())
	if err != nil {
		return err
	}
	tasks, err := pipeline.ListTasks(cfg.MotifDir, tfs)
	if err != nil {
		return err
	}
	log.Info("checking the cache for existing sliding window results for each TF")
	pending := pipeline.Pending(tasks, tfs, store)

	if len(pending) > 0 {
		log.Infof("motif files to score: %d / %d", len(pending), len(tfs.Motifs()))
		log.Infof("using %d workers", workers)
		log.Infof("size of calculation: %s motifs × %s peaks",
			humanize.Comma(int64(len(pending))), humanize.Comma(int64(tab.Len())))

		plus, minus := tab.Pad()
		sc := &pipeline.ScanContext{
			Plus: plus, Minus: minus, PeakIDs: tab.PeakIDs,
			TFs: tfs, Background: bg, Store: store, Scorer: engine.New(),
		}
		bar := cmdutil.NewProgress(r.stderr, len(pending), cfg.Progress)
		sum, err := pipeline.Run(ctx, pipeline.Config{Workers: workers}, sc, pending, log,
			func(pipeline.Result) { bar.Increment() })
		bar.Finish()
		info.Scheduled, info.Succeeded, info.Failed = sum.Scheduled, sum.Succeeded, sum.Failed
		if err != nil {
			return err
		}
		if sum.Failed > 0 {
			log.Warnf("%d of %d motifs failed", sum.Failed, sum.Scheduled)
		}
		log.Info("finished scoring all motifs; reading TF score files")
	} else {
		log.Info("all TFs have cached score files; reading cached files")
	}

	n, files, err := r.finish(cfg, log)
	if err != nil {
		return err
	}
	info.Rows, info.CacheFiles, info.Output = n, files, cfg.OutputPath()
	info.Elapsed = time.Since(start).Round(time.Millisecond).String()
	if err := runinfo.Write(cfg.RunInfoPath(), info); err != nil {
		log.Warnf("writing run summary: %v", err)
	}
	log.Infof("done in %s", info.Elapsed)
	return nil
}

// sequences returns the encoded peak table, from the snapshot when it was
// built from the same genome files and peaks, else from the genome.
func (r *runner) sequences(cfg config.Config, ids []string, log logrus.FieldLogger) (*seqtable.Table, error) {
	files, err := fasta.ListFiles(cfg.GenomeDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .fa files in %s", ErrMissingInput, cfg.GenomeDir)
	}
	key := seqtable.Key{GenomeFiles: files, PeakIDs: ids}
	if !cfg.RefreshSequences {
		if tab, ok := seqtable.Reuse(cfg.SnapshotPath(), key); ok {
			log.Infof("reading peak sequences from %s", cfg.SnapshotPath())
			return tab, nil
		}
	}

	peaks, bad := peak.ParseAll(ids)
	if len(bad) > 0 {
		log.Warnf("skipping %d peak ids that are not chrom:start-end (first: %q)", len(bad), bad[0])
	}
	log.Infof("extracting peak sequences from %d genome files", len(files))
	tab, err := seqtable.Extract(files, peaks, log)
	if err != nil {
		return nil, err
	}

	lengths := report.Floats(tab.Lengths())
	if s, err := report.Summarize(lengths); err == nil {
		log.Infof("most common peak length (mode): %.0f bp", s.Mode)
		if err := report.Histogram(cfg.PeakLenHistPath(), "ATAC-seq Peak Length Distribution", "Peak Length (bp)", lengths, 50); err != nil {
			log.Warnf("peak length histogram: %v", err)
		}
	}
	pct := 0.0
	if len(ids) > 0 {
		pct = float64(tab.Len()) / float64(len(ids)) * 100
	}
	log.Infof("found sequence for %.2f%% of peaks (%d / %d)", pct, tab.Len(), len(ids))

	if err := seqtable.Save(cfg.SnapshotPath(), key, tab); err != nil {
		log.Warnf("saving sequence snapshot: %v", err)
	}
	return tab, nil
}
