package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the target executable exists and is executable",
		Long: `Check the target executable without writing anything. Exits with code 3
when the target is missing or not executable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Target: m.Path(viper.GetString(targetConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
