package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wslkit/wslctl/src/common/paths"
	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

var importCmd = &cobra.Command{
	Use:   "import <files...>",
	Short: "Register distributions from archive or disk files",
	Long: `Registers a distribution for each given file. Files may be literal
paths or glob patterns. The distribution name is derived from the file
name unless --name is given (single file only). With --in-place a
virtual disk file is registered at its current location without
copying.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("name", "", "Distribution name (single file only)")
	importCmd.Flags().String("destination", "", "Directory that will hold the distributions (default: import.destination config, ~/WSL)")
	importCmd.Flags().Int("version", 0, "Pin the architecture version (1 or 2)")
	importCmd.Flags().String("format", "auto", "Source format (auto, tar, vhdx)")
	importCmd.Flags().Bool("in-place", false, "Register the file at its current location")
	importCmd.Flags().Bool("raw-destination", false, "Use the destination directory as-is, without a per-name subdirectory")

	viper.SetDefault("import.destination", "~/WSL")
}

func runImport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	destination, _ := cmd.Flags().GetString("destination")
	version, _ := cmd.Flags().GetInt("version")
	formatToken, _ := cmd.Flags().GetString("format")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	rawDestination, _ := cmd.Flags().GetBool("raw-destination")

	format, ok := wsl.ParseFormat(formatToken)
	if !ok {
		return fmt.Errorf("unknown import format %q", formatToken)
	}

	sources, err := resolveSourceFiles(args)
	if err != nil {
		return err
	}
	if name != "" && len(sources) > 1 {
		return fmt.Errorf("--name requires a single source file, got %d", len(sources))
	}

	if destination == "" {
		destination = viper.GetString("import.destination")
	}
	destination = paths.Expand(destination)

	c := getClient()
	ctx := context.Background()

	var imported []wsl.Distribution
	for _, source := range sources {
		req := wsl.ImportRequest{
			Name:    name,
			Source:  source,
			Version: version,
			Format:  format,
			InPlace: inPlace,
		}
		if req.Name == "" {
			req.Name = wsl.DistributionNameFromFile(source)
		}
		if !inPlace {
			req.Destination = destination
			if !rawDestination {
				req.Destination = filepath.Join(destination, req.Name)
			}
		}

		rec, err := c.Import(ctx, req)
		if err != nil {
			return err
		}
		imported = append(imported, *rec)
	}

	return printDistributions(imported)
}

// resolveSourceFiles expands glob patterns and checks literal paths.
func resolveSourceFiles(args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		expanded := paths.Expand(arg)
		if strings.ContainsAny(expanded, "*?[") {
			matches, err := filepath.Glob(expanded)
			if err != nil {
				return nil, fmt.Errorf("invalid file pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no file matches %q", arg)
			}
			sources = append(sources, matches...)
			continue
		}
		if !paths.IsFile(expanded) {
			return nil, fmt.Errorf("source file %q not found", arg)
		}
		sources = append(sources, expanded)
	}
	return sources, nil
}
