package main

import (
	"fmt"
	"io"
	"os"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/errors"
	"freedge/internal/infra/dataset"
	"freedge/internal/util"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <csv>",
		Short: "Check a dataset without touching the registry",
		Long: `Load and normalize a CSV dataset and report what it contains.
The registry is not read or written, so no configuration is needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}

			return runValidate(cmd.OutOrStdout(), args[0], today)
		},
	}
}

func runValidate(out io.Writer, path string, today civil.Date) error {
	fmt.Fprintf(out, "Validating dataset: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "cannot read dataset")
	}
	checksum, err := util.CalculateFileChecksum(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Size: %s\n", util.FormatBytes(info.Size()))
	fmt.Fprintf(out, "  SHA256: %s\n", checksum)

	rows, err := dataset.LoadFile(path)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)

		return errors.New("validation failed")
	}

	entries, err := registry.Normalize(rows, today)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)

		return errors.New("validation failed")
	}

	fmt.Fprintf(out, "  ✅ %d rows\n", len(entries))
	for _, status := range entity.Statuses {
		if n := countStatus(entries, status); n > 0 {
			fmt.Fprintf(out, "     %s: %d\n", status, n)
		}
	}
	notifiable := len(registry.Notifiable(entries))
	fmt.Fprintf(out, "     Caretakers who agreed to check-ins: %d\n", notifiable)

	// Against an empty registry the only collisions are repeated project names
	delta := registry.Reconcile(nil, entries)
	for _, collision := range delta.Collisions {
		fmt.Fprintf(out, "  ⚠️  %s\n", collision)
	}

	fmt.Fprintln(out, "✅ Validation passed!")

	return nil
}

func countStatus(entries []*entity.Freedge, status entity.Status) int {
	n := 0
	for _, entry := range entries {
		if entry.Status == status {
			n++
		}
	}

	return n
}
