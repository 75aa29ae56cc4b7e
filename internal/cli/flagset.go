package cli

import "github.com/spf13/pflag"

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
