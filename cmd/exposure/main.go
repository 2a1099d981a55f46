// Package main provides the CLI entrypoint for exposure.
//
// exposure works on YAML entity definition files:
//   - check validates option keys and reports every problem in a file
//   - resolve merges block and declaration options and prints the result
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose bool
	// logger overrides the logger built from the flags.
	logger *zap.Logger
}

func main() {
	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "exposure",
		Short:         "Check and resolve entity exposure definitions",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCheckCmd(opts),
		newResolveCmd(opts),
	)

	return cmd
}

// buildLogger returns the injected logger or one configured from the flags.
// Logs go to stderr so command output stays machine readable.
func (o *rootOptions) buildLogger() (*zap.Logger, error) {
	if o.logger != nil {
		return o.logger, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}

	if o.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	return cfg.Build()
}
