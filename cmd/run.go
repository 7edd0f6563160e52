package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full harness pipeline (same as running without a command)",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		RunE:  runPipeline,
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
