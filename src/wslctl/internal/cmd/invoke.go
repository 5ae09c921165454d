package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [flags] -- <command...>",
	Short: "Run a command inside distributions",
	Long: `Runs a command in every distribution matching --distribution (the
default distribution when omitted). The command is either a raw
argument vector after --, or a free-form string given with --command
and executed through the distribution's shell.`,
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringSliceP("distribution", "d", nil, "Distribution name patterns (default: the default distribution)")
	invokeCmd.Flags().StringP("command", "c", "", "Free-form command string run through the shell")
	invokeCmd.Flags().StringP("user", "u", "", "Run as the given distribution user")
	invokeCmd.Flags().Bool("system", false, "Run in the system distribution")
	invokeCmd.Flags().String("cd", "", "Working directory inside the distribution")
	invokeCmd.Flags().String("shell-type", "", "Shell behavior (standard, login, none)")

	_ = invokeCmd.RegisterFlagCompletionFunc("distribution", completionDistributionFlag)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	patterns, _ := cmd.Flags().GetStringSlice("distribution")
	command, _ := cmd.Flags().GetString("command")

	if command == "" && len(args) == 0 {
		return fmt.Errorf("no command given: pass arguments after -- or use --command")
	}
	if command != "" && len(args) > 0 {
		return fmt.Errorf("--command and a command vector are mutually exclusive")
	}

	opts := sessionOptions(cmd)

	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, patterns)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if command != "" {
			err = c.RunShell(ctx, target, opts, command)
		} else {
			err = c.Run(ctx, target, opts, args)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// sessionOptions collects the session flags shared by invoke and enter.
func sessionOptions(cmd *cobra.Command) wsl.RunOptions {
	var opts wsl.RunOptions
	opts.User, _ = cmd.Flags().GetString("user")
	opts.System, _ = cmd.Flags().GetBool("system")
	opts.WorkingDirectory, _ = cmd.Flags().GetString("cd")
	if cmd.Flags().Lookup("shell-type") != nil {
		opts.ShellType, _ = cmd.Flags().GetString("shell-type")
	}
	return opts
}
