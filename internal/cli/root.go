package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/tracc-cli/tracc/internal/db"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "tracc",
	Short:         "A minimal work time tracker",
	Long:          `Tracc records the start and end of work periods and lists what was tracked.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Init(); err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		db.Close()
	},
}

// Execute runs the root command. Errors are rendered on stderr and the
// process exits non-zero, so scripts can rely on the exit status.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(Version)); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
}
