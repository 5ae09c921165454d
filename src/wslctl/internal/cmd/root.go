package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wslkit/wslctl/src/common/cli"
	commonerrors "github.com/wslkit/wslctl/src/common/errors"
	"github.com/wslkit/wslctl/src/common/logs"
	"github.com/wslkit/wslctl/src/common/version"
	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Configuration file path
	cfgFile string

	// Output format (table, json, yaml)
	outputFormat string

	// WSL client instance
	wslClient *wsl.Client

	// Logger for warnings and diagnostics
	logger *logs.Logger
)

// Linker variables - set via ldflags at build time
var (
	Version        = "dev"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wslctl",
	Short: "Manage WSL distributions",
	Long: `wslctl manages the Linux distributions of the Windows Subsystem
for Linux by wrapping the wsl.exe command-line tool.

It lists, stops, converts, imports, exports, removes and enters
distributions, and works both from Windows and from inside a
distribution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		logger = cli.InitLogger("")
		return nil
	},
}

// Execute runs the root command
func Execute() {
	VersionInfo.Version = Version
	VersionInfo.ReleaseVersion = ReleaseVersion
	VersionInfo.BuildDate = BuildDate
	VersionInfo.GitCommit = GitCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(commonerrors.GetExitStatus(err))
	}
}

func init() {
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "~/.wslctl/wslctl.yaml")

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")

	cli.RegisterLogFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(shutdownCmd)

	registerCompletions()
}

func registerCompletions() {
	// Global flag completions
	_ = rootCmd.RegisterFlagCompletionFunc("output", completionOutputFormat)

	// Distribution name completions
	stopCmd.ValidArgsFunction = completionDistributionNames
	setCmd.ValidArgsFunction = completionDistributionNames
	removeCmd.ValidArgsFunction = completionDistributionNames
	enterCmd.ValidArgsFunction = completionDistributionNames
	listCmd.ValidArgsFunction = completionDistributionNames

	// Flag completions
	_ = listCmd.RegisterFlagCompletionFunc("state", completionDistributionState)
	_ = exportCmd.RegisterFlagCompletionFunc("format", completionFormat)
	_ = importCmd.RegisterFlagCompletionFunc("format", completionFormat)
}

func initConfig() error {
	opts := cli.ConfigOptions{
		ConfigName: "wslctl",
		ConfigType: "yaml",
		EnvPrefix:  "WSLCTL",
		SearchPaths: []string{
			"~/.wslctl",
		},
	}
	opts.ConfigFile = cfgFile

	return cli.InitConfig(opts)
}

// getClient returns the WSL client, creating it if needed.
func getClient() *wsl.Client {
	if wslClient == nil {
		wslClient = wsl.New(getLogger())
	}
	return wslClient
}

// getLogger returns the configured logger, falling back to defaults
// when commands run outside the cobra lifecycle (tests).
func getLogger() *logs.Logger {
	if logger == nil {
		logger = logs.NewDefault()
	}
	return logger
}

// getOutputFormat returns the current output format
func getOutputFormat() string {
	return outputFormat
}
