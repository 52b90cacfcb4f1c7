package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tracc-cli/tracc/internal/db"
	"github.com/tracc-cli/tracc/internal/model"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List recorded work periods",
	Long: `List all recorded work periods in chronological order.

Examples:
  tracc show                  # One start..end line per period
  tracc show --format table   # Tabular output with durations`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "plain", "Output format: plain, table")
}

func runShow(cmd *cobra.Command, args []string) error {
	periods, err := db.ListPeriods()
	if err != nil {
		return fmt.Errorf("failed to list periods: %w", err)
	}

	switch showFormat {
	case "plain":
		printPeriodLines(cmd.OutOrStdout(), periods)
	case "table":
		printPeriodsTable(cmd.OutOrStdout(), periods)
	default:
		return fmt.Errorf("unknown format: %s", showFormat)
	}

	return nil
}

func printPeriodLines(w io.Writer, periods []model.Period) {
	for i := range periods {
		fmt.Fprintln(w, formatPeriod(&periods[i]))
	}
}

// formatPeriod renders a period as "start..end", with "(in progress)" in
// place of the end time while the period is open.
func formatPeriod(p *model.Period) string {
	if p.Open() {
		return fmt.Sprintf("%s..(in progress)", p.StartTime.Format(model.TimeFormat))
	}
	return fmt.Sprintf("%s..%s",
		p.StartTime.Format(model.TimeFormat), p.EndTime.Format(model.TimeFormat))
}

func printPeriodsTable(w io.Writer, periods []model.Period) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Start", "End", "Duration"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i := range periods {
		p := &periods[i]
		end := "(in progress)"
		if p.EndTime != nil {
			end = p.EndTime.Format(model.TimeFormat)
		}
		table.Append([]string{
			p.StartTime.Format(model.TimeFormat),
			end,
			formatDurationShort(p.Duration()),
		})
	}

	table.Render()
}
