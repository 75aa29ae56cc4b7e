// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"swscan/internal/background"
	"swscan/internal/config"
	"swscan/internal/writers"
)

// EnvPrefix prefixes every environment variable (SWSCAN_OUTPUT_DIR, ...).
const EnvPrefix = "SWSCAN"

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.String(config.KeyConfig, "", "config file (yaml, toml or json)")
	fs.BoolP(config.KeyQuiet, "q", false, "only log warnings and errors")
	fs.BoolP(config.KeyVerbose, "V", false, "log debug messages")
}

// AddOutputFlags registers the flags of commands that write the final table.
func AddOutputFlags(fs *pflag.FlagSet) {
	fs.StringP(config.KeyOutputDir, "o", "", "output directory (holds tmp/ and the final table) [*]")
	fs.String(config.KeyFigDir, "", "figure directory (default <output-dir>/figures)")
	fs.String(config.KeyFormat, "parquet", "final table format: "+strings.Join(writers.Formats(), " | "))
	fs.String(config.KeyOutput, "", "final table path, '-' for stdout (default <output-dir>/"+config.FinalBase+".<format>)")
}

// AddScoreFlags registers the inputs of a scoring run.
func AddScoreFlags(fs *pflag.FlagSet) {
	fs.String(config.KeyPeakTable, "", "peak/gene table with peak_id and target_id (default <output-dir>/"+config.PeakTableName+")")
	fs.String(config.KeyTFNames, "", "TSV with TF_Name and Motif_ID columns [*]")
	fs.String(config.KeyMotifDir, "", "directory of <motif_id>.txt probability matrices [*]")
	fs.String(config.KeyGenomeDir, "", "directory of reference FASTA files (.fa, .fasta, .fa.gz) [*]")
	fs.StringP(config.KeySpecies, "s", "", "background model: "+strings.Join(background.Labels(), " | ")+" [*]")
	fs.IntP(config.KeyWorkers, "j", 0, "number of worker goroutines (0 = all CPUs)")
	fs.Bool(config.KeyProgress, true, "show a progress bar on stderr")
	fs.Bool(config.KeyRefreshSeqs, false, "re-read the genome even when a sequence snapshot exists")
}

// NewViper layers flags over SWSCAN_* environment variables, over the
// optional --config file, over flag defaults.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if fn := v.GetString(config.KeyConfig); fn != "" {
		v.SetConfigFile(fn)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", fn, err)
		}
	}
	return v, nil
}

// Resolve builds the configuration of one command from its parsed flags.
func Resolve(fs *pflag.FlagSet) (config.Config, error) {
	v, err := NewViper(fs)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v), nil
}
