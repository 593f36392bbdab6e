package commands

import (
	"fmt"
	"os"

	"inz-data-scraper/lib/pdftext"
	"inz-data-scraper/lib/scrapers/inz"
	"inz-data-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	extractMode    *string
	extractJson    *bool
	extractHistory *string
)

func init() {
	extractMode = extractCmd.Flags().String("mode", "", "Extraction mode (html_table, html_snapshot, pdf_rows), defaults to the configured mode.")
	extractJson = extractCmd.Flags().Bool("json", false, "Print the records as JSON instead of a table.")
	extractHistory = extractCmd.Flags().String("history", "", "A published JSON file to reconcile a snapshot against.")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <path/to/document> [--mode <mode>] [--json] [--history <path/to/history.json>]",
	Short: "Runs an extractor over a downloaded document and prints the records.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg := readConfig()
		if *extractMode != "" {
			cfg.Mode = *extractMode
		}
		extractor, err := inz.NewExtractor(cfg.ExtractorOptions(pdftext.PlainText))
		if err != nil {
			serviceutil.Fatal("failed to create extractor", err)
		}

		document, err := os.ReadFile(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read document", err)
		}
		records, err := extractor.Extract(ctx, document)
		if err != nil {
			serviceutil.Fatal("failed to extract records", err)
		}

		if *extractHistory != "" {
			if len(records) != 1 {
				serviceutil.Fatal("reconcile", fmt.Errorf("expected a single snapshot record, got %d", len(records)))
			}
			history, err := readRecords(*extractHistory)
			if err != nil {
				serviceutil.Fatal("failed to read history", err)
			}
			records, err = inz.Reconcile(ctx, records[0], history)
			if err != nil {
				serviceutil.Fatal("failed to reconcile", err)
			}
		}

		if *extractJson {
			data, err := inz.EncodeRecords(records)
			if err != nil {
				serviceutil.Fatal("failed to encode records", err)
			}
			fmt.Println(string(data))
			return
		}
		renderRecords(os.Stdout, records)
	},
}

func readRecords(path string) ([]inz.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return inz.DecodeHistory(data)
}
