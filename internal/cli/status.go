package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tracc-cli/tracc/internal/db"
	"github.com/tracc-cli/tracc/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a period is being tracked",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	period, err := db.OpenPeriod()
	if err != nil {
		return fmt.Errorf("failed to get open period: %w", err)
	}
	if period == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not tracking")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tracking since %s\n", period.StartTime.Format(model.TimeFormat))
	fmt.Fprintf(cmd.OutOrStdout(), "  Elapsed: %s\n", formatDuration(period.Duration()))

	return nil
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func formatDurationShort(d time.Duration) string {
	d = d.Round(time.Minute)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
