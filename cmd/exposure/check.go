package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"entity-exposure/internal/definition"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runCheck(cmd, logger, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

func runCheck(cmd *cobra.Command, logger *zap.Logger, paths []string, strict bool) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range paths {
		f, err := definition.LoadFile(path)
		if err != nil {
			return err
		}

		res := definition.Validate(f)
		for _, d := range res.All() {
			fmt.Fprintf(out, "%s: %s: %s\n", path, d.Severity, d.String())
		}

		logger.Debug("checked definition",
			zap.String("path", path),
			zap.Int("entities", len(f.Entities)),
			zap.Int("errors", len(res.Errors)),
			zap.Int("warnings", len(res.Warnings)))

		failed += len(res.Errors)
		if strict {
			failed += len(res.Warnings)
		}
	}

	if failed > 0 {
		return fmt.Errorf("check failed with %d problem(s)", failed)
	}

	fmt.Fprintln(out, "OK")

	return nil
}
