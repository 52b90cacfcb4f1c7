package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tracc-cli/tracc/internal/db"
	"github.com/tracc-cli/tracc/internal/model"
)

// beginCmd opens a new work period.
//
// Only one period can be open at a time; starting while a period is running
// fails with a message naming when it started.
var beginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Start a new work period",
	Args:  cobra.NoArgs,
	RunE:  runBegin,
}

func runBegin(cmd *cobra.Command, args []string) error {
	last, err := db.LastPeriod()
	if err != nil {
		return fmt.Errorf("failed to read last period: %w", err)
	}

	if _, err := db.BeginPeriod(); err != nil {
		return err
	}

	if last != nil && last.EndTime != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Starting new period. Last one ended at %s.\n",
			last.EndTime.Format(model.TimeFormat))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Starting new period.")
	}

	return nil
}
