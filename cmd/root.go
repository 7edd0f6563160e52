// Package cmd provides the root command and CLI setup for frontcheck.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	"frontcheck.dev/pkg/frontcheck/internal/controller"
	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var targetAdapter adapter.TargetAdapter
var corpusLoader adapter.CorpusLoader
var reportStore adapter.ReportStore
var markdownExporter adapter.MarkdownExporter
var checker domain.Checker
var recorder domain.Recorder
var reporter domain.Reporter
var guideRenderer domain.GuideRenderer
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command.
var (
	targetFlag       string
	corpusDirFlag    string
	corpusSourceFlag string
	reportFlag       string
	verboseFlag      bool
	logFileFlag      string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	targetAdapter = adapter.NewLocalTargetAdapter()
	corpusLoader = adapter.NewYAMLCorpusLoader()
	reportStore = adapter.NewReportStore()
	markdownExporter = adapter.NewGoldmarkExporter()
	checker = domain.NewChecker(targetAdapter)
	recorder = domain.NewRecorder(fsAdapter)
	reporter = domain.NewReporter(reportStore, ui)
	guideRenderer = domain.NewGuideRenderer()
	workflow = domain.NewWorkflow(
		fsAdapter,
		corpusLoader,
		reportStore,
		markdownExporter,
		ui,
		checker,
		recorder,
		reporter,
		guideRenderer,
	)
}

const rootLongDescription = `frontcheck is a manual test harness for a GUI compiler frontend.

Run without arguments it checks that the target executable exists and is
executable, writes the snippet corpus to the corpus directory, records one
result per snippet, saves a JSON report and prints the checklist to follow
inside the target's interface.

Exit codes:
  0  run completed (manual and skipped cases are not failures)
  1  I/O or usage error
  3  target executable missing or not executable`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "frontcheck",
		Short:         "Manual test harness for a GUI compiler frontend",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			reportConfigError(cmd, configErr)
		},
		RunE: runPipeline,
	}
}

// newRootCmd builds a fresh root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&targetFlag, targetFlagName, "t", viper.GetString(targetConfigKey), "path of the compiler frontend executable")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(targetFlagName), targetConfigKey)

	cmd.PersistentFlags().StringVarP(&corpusDirFlag, corpusDirFlagName, "d", viper.GetString(corpusDirConfigKey), "directory the snippet files are written to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(corpusDirFlagName), corpusDirConfigKey)

	cmd.PersistentFlags().StringVar(&corpusSourceFlag, corpusSourceFlagName, viper.GetString(corpusSourceConfigKey), "fixture directory with corpus.yaml (default: built-in corpus)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(corpusSourceFlagName), corpusSourceConfigKey)

	cmd.PersistentFlags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "path of the JSON report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	return workflow.Run(cmd.Context(), domain.RunArgs{
		Target:       m.Path(viper.GetString(targetConfigKey)),
		CorpusDir:    m.Path(viper.GetString(corpusDirConfigKey)),
		CorpusSource: m.Path(viper.GetString(corpusSourceConfigKey)),
		Report:       m.Path(viper.GetString(reportConfigKey)),
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := execute(ctx, rootCmd)

	stop()

	if code != domain.ExitOK {
		os.Exit(code)
	}
}

// execute runs cmd and reports any error on its standard output.
func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	}

	return domain.ExitCode(err)
}
