package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"swscan/internal/config"
	"swscan/internal/version"
)

// UsageError marks a bad command line or configuration.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// IsUsage reports whether err is (or wraps) a UsageError.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// Handlers run the commands once their configuration is resolved and valid.
type Handlers struct {
	Score     func(ctx context.Context, cfg config.Config) error
	Aggregate func(ctx context.Context, cfg config.Config) error
}

// NewRootCommand builds the swscan command tree.
func NewRootCommand(h Handlers, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "swscan",
		Short: "sliding-window TF motif scoring of ATAC-seq peaks",
		Long: `swscan scores every ATAC-seq peak against the binding motifs of the TFs
expressed in the dataset and writes a TF-to-peak binding potential table.

Per-TF results are cached under <output-dir>/tmp so interrupted runs resume.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("swscan version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &UsageError{Err: err} })
	AddGlobalFlags(root.PersistentFlags())

	score := &cobra.Command{
		Use:   "score",
		Short: "scan motifs over peaks, cache per-TF scores and write the final table",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, config.Config.ValidateScore)
			if err != nil {
				return err
			}
			return h.Score(cmd.Context(), cfg)
		},
	}
	score.Example = `  swscan score -o out/mESC --tf-names-file tf_info.tsv \
      --motif-dir motifs/pwms --genome-dir genome/mm10 --species mm10 -j 16`
	AddOutputFlags(score.Flags())
	AddScoreFlags(score.Flags())

	aggregate := &cobra.Command{
		Use:   "aggregate",
		Short: "rebuild the final table from the per-TF cache only",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, config.Config.ValidateAggregate)
			if err != nil {
				return err
			}
			return h.Aggregate(cmd.Context(), cfg)
		},
	}
	AddOutputFlags(aggregate.Flags())

	ver := &cobra.Command{
		Use:   "version",
		Short: "print version and exit",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "swscan version %s\n", version.Version)
		},
	}

	root.AddCommand(score, aggregate, ver)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func resolve(cmd *cobra.Command, validate func(config.Config) error) (config.Config, error) {
	cfg, err := Resolve(cmd.Flags())
	if err != nil {
		return cfg, &UsageError{Err: err}
	}
	if err := validate(cfg); err != nil {
		return cfg, &UsageError{Err: err}
	}
	return cfg, nil
}
