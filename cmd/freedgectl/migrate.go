package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the registry schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
					if err := svc.migrator.Up(ctx); err != nil {
						return err
					}

					return printVersion(ctx, cmd, svc)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
					if err := svc.migrator.Down(ctx); err != nil {
						return err
					}

					return printVersion(ctx, cmd, svc)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
					return printVersion(ctx, cmd, svc)
				})
			},
		},
	)

	return cmd
}

func printVersion(ctx context.Context, cmd *cobra.Command, svc *services) error {
	version, dirty, err := svc.migrator.Version(ctx)
	if err != nil {
		return err
	}

	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version %d (%s)\n", version, state)

	return nil
}
