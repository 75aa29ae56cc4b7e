// Package config holds the resolved run configuration and the file layout
// derived from it. Values come from a viper instance layered over flags,
// SWSCAN_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"swscan/internal/background"
	"swscan/internal/runinfo"
	"swscan/internal/writers"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig      = "config"
	KeyOutputDir   = "output-dir"
	KeyFigDir      = "fig-dir"
	KeyPeakTable   = "peak-table"
	KeyTFNames     = "tf-names-file"
	KeyMotifDir    = "motif-dir"
	KeyGenomeDir   = "genome-dir"
	KeySpecies     = "species"
	KeyWorkers     = "workers"
	KeyFormat      = "format"
	KeyOutput      = "output"
	KeyProgress    = "progress"
	KeyRefreshSeqs = "refresh-sequences"
	KeyQuiet       = "quiet"
	KeyVerbose     = "verbose"
)

// File layout under the output directory.
const (
	PeakTableName = "tss_distance_score.parquet"
	FinalBase     = "sliding_window_tf_to_peak_score"
	SnapshotName  = "peak_sequences.gob.sz"
	PeakLenHist   = "atac_peak_len_hist.png"
	ScoreHist     = "sliding_window_score_hist.png"
	cacheSubdir   = "sliding_window_tf_scores"
	tmpSubdir     = "tmp"
	figuresSubdir = "figures"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	OutputDir   string
	FigDir      string
	PeakTable   string
	TFNamesFile string
	MotifDir    string
	GenomeDir   string
	Species     string
	Workers     int // 0 = all CPUs
	Format      string
	Output      string // final table path; "-" = stdout; "" = derived

	Progress         bool
	RefreshSequences bool
	Quiet            bool
	Verbose          bool
}

// Load reads every key from v and fills the derived defaults. It does not
// validate; see ValidateScore and ValidateAggregate.
func Load(v *viper.Viper) Config {
	c := Config{
		OutputDir:        v.GetString(KeyOutputDir),
		FigDir:           v.GetString(KeyFigDir),
		PeakTable:        v.GetString(KeyPeakTable),
		TFNamesFile:      v.GetString(KeyTFNames),
		MotifDir:         v.GetString(KeyMotifDir),
		GenomeDir:        v.GetString(KeyGenomeDir),
		Species:          v.GetString(KeySpecies),
		Workers:          v.GetInt(KeyWorkers),
		Format:           v.GetString(KeyFormat),
		Output:           v.GetString(KeyOutput),
		Progress:         v.GetBool(KeyProgress),
		RefreshSequences: v.GetBool(KeyRefreshSeqs),
		Quiet:            v.GetBool(KeyQuiet),
		Verbose:          v.GetBool(KeyVerbose),
	}
	if c.Format == "" {
		c.Format = "parquet"
	}
	if c.OutputDir != "" {
		if c.FigDir == "" {
			c.FigDir = filepath.Join(c.OutputDir, figuresSubdir)
		}
		if c.PeakTable == "" {
			c.PeakTable = filepath.Join(c.OutputDir, PeakTableName)
		}
	}
	if c.Quiet {
		c.Progress = false
	}
	return c
}

// ValidateAggregate checks what every command needs.
func (c Config) ValidateAggregate() error {
	if c.OutputDir == "" {
		return errors.New("--output-dir is required")
	}
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if !writers.Known(c.Format) {
		return fmt.Errorf("invalid --format %q (want one of %v)", c.Format, writers.Formats())
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// ValidateScore checks the inputs of a full scoring run.
func (c Config) ValidateScore() error {
	if err := c.ValidateAggregate(); err != nil {
		return err
	}
	switch {
	case c.TFNamesFile == "":
		return errors.New("--tf-names-file is required")
	case c.MotifDir == "":
		return errors.New("--motif-dir is required")
	case c.GenomeDir == "":
		return errors.New("--genome-dir is required")
	case c.Species == "":
		return errors.New("--species is required")
	}
	if _, err := background.For(c.Species); err != nil {
		return err
	}
	return nil
}

/* ---------------- derived paths ---------------- */

func (c Config) TmpDir() string       { return filepath.Join(c.OutputDir, tmpSubdir) }
func (c Config) CacheDir() string     { return filepath.Join(c.TmpDir(), cacheSubdir) }
func (c Config) SnapshotPath() string { return filepath.Join(c.TmpDir(), SnapshotName) }
func (c Config) RunInfoPath() string  { return filepath.Join(c.TmpDir(), runinfo.FileName) }
func (c Config) PeakLenHistPath() string {
	return filepath.Join(c.FigDir, PeakLenHist)
}
func (c Config) ScoreHistPath() string { return filepath.Join(c.FigDir, ScoreHist) }

// OutputPath is the final table destination.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return writers.FileName(filepath.Join(c.OutputDir, FinalBase), c.Format)
}
