package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"entity-exposure/exposure"
	"entity-exposure/internal/definition"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var entity string

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Print the merged options of every exposure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runResolve(cmd, logger, args[0], entity)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "only print the named entity")

	return cmd
}

func runResolve(cmd *cobra.Command, logger *zap.Logger, path, entity string) error {
	f, err := definition.LoadFile(path)
	if err != nil {
		return err
	}

	res := definition.Validate(f)
	for _, w := range res.Warnings {
		logger.Warn(w.Message,
			zap.String("code", w.Code),
			zap.String("entity", w.Entity),
			zap.String("attribute", w.Attribute))
	}

	if err := res.Error(); err != nil {
		return err
	}

	entities, err := definition.Resolve(f, exposure.WithLogger(logger.Named("merge")))
	if err != nil {
		return err
	}

	if entity != "" {
		entities = filterEntity(entities, entity)
		if len(entities) == 0 {
			return fmt.Errorf("entity %q not found in %s", entity, path)
		}
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("failed to encode resolved options: %w", err)
	}

	return enc.Close()
}

func filterEntity(entities []definition.ResolvedEntity, name string) []definition.ResolvedEntity {
	for _, e := range entities {
		if e.Name == name {
			return []definition.ResolvedEntity{e}
		}
	}

	return nil
}
