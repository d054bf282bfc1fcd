package main

import (
	"os"
	"time"

	"freedge/internal/errors"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configDir string
	today     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "freedgectl",
		Short: "Manage the freedge registry",
		Long: `Load caretaker datasets into the freedge registry, review what changed,
and inspect entries that are overdue for a caretaker check-in.

Examples:
  # Check a spreadsheet export without touching the database
  freedgectl validate freedges.csv

  # Show what loading it would change
  freedgectl preview freedges.csv

  # Load it after confirming
  freedgectl apply freedges.csv

  # Entries unconfirmed for more than 60 days
  freedgectl overdue --threshold 60`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configDir != "" {
				return errors.WithStack(os.Setenv("CONFIG_PATH", opts.configDir))
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configDir, "config", "c", "",
		"directory holding config.yaml (default: ./config)")
	cmd.PersistentFlags().StringVar(&opts.today, "today", "",
		"evaluate dates as of YYYY-MM-DD (default: today)")

	cmd.AddCommand(
		newValidateCmd(opts),
		newPreviewCmd(opts),
		newApplyCmd(opts),
		newOverdueCmd(opts),
		newMigrateCmd(),
	)

	return cmd
}

func (o *rootOptions) todayDate() (civil.Date, error) {
	if o.today == "" {
		return civil.DateOf(time.Now()), nil
	}

	today, err := civil.ParseDate(o.today)
	if err != nil {
		return civil.Date{}, errors.Wrapf(err, "invalid --today %q", o.today)
	}

	return today, nil
}
