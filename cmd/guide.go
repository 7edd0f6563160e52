package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// guideCmd represents the guide command.
var guideCmd = newGuideCmd()

func newGuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the manual verification guide",
		Long: `Print the checklist to follow inside the target's interface, or export it
as an HTML page with --html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			html, err := cmd.Flags().GetString(htmlFlagName)
			if err != nil {
				return err
			}

			return workflow.Guide(cmd.Context(), domain.GuideCommandArgs{
				Target:       m.Path(viper.GetString(targetConfigKey)),
				CorpusDir:    m.Path(viper.GetString(corpusDirConfigKey)),
				CorpusSource: m.Path(viper.GetString(corpusSourceConfigKey)),
				HTML:         m.Path(html),
			})
		},
	}

	cmd.Flags().String(htmlFlagName, "", "write the guide as an HTML page to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
