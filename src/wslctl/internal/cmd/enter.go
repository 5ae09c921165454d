package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var enterCmd = &cobra.Command{
	Use:   "enter [pattern]",
	Short: "Open an interactive session in a distribution",
	Long: `Starts an interactive shell in the distribution matching the pattern,
or in the default distribution when no pattern is given. The session
is attached to the current terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnter,
}

func init() {
	enterCmd.Flags().StringP("user", "u", "", "Run as the given distribution user")
	enterCmd.Flags().Bool("system", false, "Enter the system distribution")
	enterCmd.Flags().String("cd", "", "Working directory inside the distribution")
}

func runEnter(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("enter requires an interactive terminal")
	}

	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, args)
	if err != nil {
		return err
	}
	if len(targets) > 1 {
		return fmt.Errorf("%d distributions match, name exactly one to enter", len(targets))
	}

	return c.Enter(ctx, targets[0], sessionOptions(cmd))
}
