package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"freedge/internal/errors"
	"freedge/internal/infra/dataset"
	"freedge/internal/util"

	"github.com/spf13/cobra"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var (
		assumeYes      bool
		allowRemoveAll bool
	)

	cmd := &cobra.Command{
		Use:   "apply <csv>",
		Short: "Load a dataset into the registry",
		Long: `Preview a dataset, ask for confirmation, then apply the changes in one transaction.
The apply is refused if the registry changed since the preview was computed.

A dataset that would remove every entry is refused unless --allow-remove-all is given.`,
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

			out := cmd.OutOrStdout()
			start := time.Now()

			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				preview, err := svc.importUC.Preview(ctx, rows, today)
				if err != nil {
					return err
				}
				printPreview(out, preview, false)

				if preview.Delta == nil || preview.Delta.IsEmpty() {
					return svc.importUC.Discard(ctx, preview.ID)
				}
				if preview.RemovesAll && !allowRemoveAll {
					_ = svc.importUC.Discard(ctx, preview.ID)

					return errors.New("refusing to remove every registry entry without --allow-remove-all")
				}

				if !assumeYes && !confirm(cmd.InOrStdin(), out, "\nApply these changes? [y/N] ") {
					if err := svc.importUC.Discard(ctx, preview.ID); err != nil {
						return err
					}

					return errAborted
				}

				result, err := svc.importUC.Apply(ctx, preview.ID, allowRemoveAll)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "✅ Applied in %s: %d added, %d removed, %d modified\n",
					util.FormatDuration(time.Since(start)), result.Added, result.Removed, result.Modified)

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "apply without asking for confirmation")
	cmd.Flags().BoolVar(&allowRemoveAll, "allow-remove-all", false, "allow a dataset that removes every registry entry")

	return cmd
}

// errAborted is returned when the operator declines to apply.
var errAborted = errors.New("import discarded")

// confirm reads one answer line; anything but y or yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
