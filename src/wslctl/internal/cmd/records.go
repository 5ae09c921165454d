package cmd

import (
	"strconv"

	"github.com/wslkit/wslctl/src/wslctl/internal/output"
	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

// printDistributions renders distribution records in the selected
// output format.
func printDistributions(records []wsl.Distribution) error {
	return output.PrintFormatted(getOutputFormat(), records, func() error {
		if len(records) == 0 {
			output.PrintMessage("No distributions found.")
			return nil
		}

		rows := make([][]string, len(records))
		for i, d := range records {
			marker := ""
			if d.Default {
				marker = "*"
			}
			rows[i] = []string{marker, d.Name, string(d.State), strconv.Itoa(d.Version)}
		}
		output.PrintTable([]string{"", "NAME", "STATE", "VERSION"}, rows)
		return nil
	})
}
