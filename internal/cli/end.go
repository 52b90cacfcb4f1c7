package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tracc-cli/tracc/internal/db"
	"github.com/tracc-cli/tracc/internal/model"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current work period",
	Args:  cobra.NoArgs,
	RunE:  runEnd,
}

func runEnd(cmd *cobra.Command, args []string) error {
	period, err := db.EndPeriod()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ending period started at %s. [%s]\n",
		period.StartTime.Format(model.TimeFormat), formatDuration(period.Duration()))

	return nil
}
