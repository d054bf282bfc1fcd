package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"freedge/internal/domain/entity"
	"freedge/internal/infra/dataset"
	"freedge/internal/usecase"

	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "preview <csv>",
		Short: "Show what loading a dataset would change",
		Long: `Compute the delta between a dataset and the registry and print it.
Nothing is written; the preview is discarded afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}
			rows, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}

			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				preview, err := svc.importUC.Preview(ctx, rows, today)
				if err != nil {
					return err
				}
				printPreview(cmd.OutOrStdout(), preview, detail)

				return svc.importUC.Discard(ctx, preview.ID)
			})
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "print every field of added and removed entries")

	return cmd
}

func printPreview(out io.Writer, preview *usecase.ImportPreview, detail bool) {
	for _, line := range preview.Summary {
		fmt.Fprintln(out, line)
	}
	if preview.Delta == nil {
		return
	}

	for _, collision := range preview.Delta.Collisions {
		fmt.Fprintf(out, "⚠️  %s\n", collision)
	}

	printEntries(out, "ADDED", preview.Delta.ToAdd, detail)
	printEntries(out, "REMOVED", preview.Delta.ToRemove, detail)

	if len(preview.Delta.ToModify) > 0 {
		fmt.Fprintln(out, "\nMODIFIED:")
	}
	for _, mod := range preview.Delta.ToModify {
		fmt.Fprintf(out, "  #%d %s\n", mod.Existing.ID, mod.Existing.ProjectName)
		for _, change := range mod.Changes() {
			if detail {
				fmt.Fprintf(out, "%s\n", indent(change.Comparison(), "    "))

				continue
			}
			fmt.Fprintf(out, "    %s: %s\n", change.Field, change.Inline())
		}
	}

	if preview.RemovesAll {
		fmt.Fprintf(out, "\n❗ Every one of the %d registry entries would be removed.\n", preview.ExistingCount)
	}
}

func printEntries(out io.Writer, title string, entries []*entity.Freedge, detail bool) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s:\n", title)
	for _, entry := range entries {
		if detail {
			fmt.Fprintf(out, "%s\n\n", indent(entry.Detail(), "  "))

			continue
		}
		if entry.HasID() {
			fmt.Fprintf(out, "  #%d %s (%s)\n", entry.ID, entry.ProjectName, entry.Address.Short())

			continue
		}
		fmt.Fprintf(out, "  %s (%s)\n", entry.ProjectName, entry.Address.Short())
	}
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}
