package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the corpus test cases",
		Long:  "List every test case of the corpus with its category and intended focus.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return workflow.List(cmd.Context(), domain.ListArgs{
				CorpusSource: m.Path(viper.GetString(corpusSourceConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
