package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion reports the module version of the binary, falling back to the
// VCS revision for development builds.
func buildVersion() (tool, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, runtime.Version()
	}

	tool = info.Main.Version
	if tool == "" || tool == "(devel)" {
		tool = unknownVersion

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				tool = "devel-" + setting.Value[:min(len(setting.Value), 12)]
			}
		}
	}

	goVersion = info.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return tool, goVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version and Go version used to build frontcheck.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tool, goVersion := buildVersion()

			cmd.Printf("frontcheck version: %s\n", tool)
			cmd.Printf("go version: %s\n", goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
