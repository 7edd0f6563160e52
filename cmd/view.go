package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View a previously saved report",
		Long:  "Load, validate and display the JSON report written by the last run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Report: m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
