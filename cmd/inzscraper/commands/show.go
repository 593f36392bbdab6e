package commands

import (
	"os"

	"inz-data-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [path/to/output.json]",
	Short: "Prints a published record file with running totals, defaults to the configured output.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		} else {
			path = readConfig().OutputPath
		}

		records, err := readRecords(path)
		if err != nil {
			serviceutil.Fatal("failed to read records", err)
		}
		renderCumulative(os.Stdout, records)
	},
}
