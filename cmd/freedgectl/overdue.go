package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"freedge/internal/domain/entity"
	"freedge/internal/usecase"

	"github.com/spf13/cobra"
)

func newOverdueCmd(opts *rootOptions) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List entries whose status has not been confirmed recently",
		Long: `List registry entries unconfirmed for more than --threshold days.
Entries that were never confirmed or whose status is unknown are always listed.
Without --threshold the configured lifecycle.thresholdDays is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}

			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				entries, err := svc.registryUC.Overdue(ctx, today, threshold)
				if err != nil {
					return err
				}

				return printOverdue(cmd.OutOrStdout(), entries)
			})
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "days without confirmation (default: configured threshold)")

	return cmd
}

func printOverdue(out io.Writer, entries []*usecase.OverdueEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No overdue entries.")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROJECT\tSTATUS\tLAST UPDATE\tDAYS\tCHECK-IN")
	for _, entry := range entries {
		days := "never"
		if _, ok := entry.Freedge.DaysSinceLastUpdate(entry.Freedge.LastStatusUpdate); ok {
			days = strconv.Itoa(entry.DaysSinceUpdate)
		}
		checkIn := "no consent"
		if entry.Notifiable {
			checkIn = entry.Freedge.ContactMethod.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			entry.Freedge.ID,
			entry.Freedge.ProjectName,
			entry.Freedge.Status,
			entity.FormatDate(entry.Freedge.LastStatusUpdate),
			days,
			checkIn,
		)
	}

	return w.Flush()
}
