package updater

import (
	"fmt"
	"time"

	"inz-data-scraper/lib/scrapers/inz"
)

const DefaultSourceURL = "https://www.immigration.govt.nz/new-zealand-visas/waiting-for-a-visa/how-long-it-takes-to-process-your-visa-application/2021-resident-visa-processing-times"

type ColumnsConfig struct {
	Table    map[string]string `json:"table"`
	Snapshot map[string]string `json:"snapshot"`
}

type Config struct {
	// one of html_table, html_snapshot, pdf_rows
	Mode       string `json:"mode"`
	SourceURL  string `json:"source_url"`
	HistoryURL string `json:"history_url"`
	OutputPath string `json:"output_path"`
	// standard 5 field cron expression
	Schedule string `json:"schedule"`
	Timezone string `json:"timezone"`

	DefaultYear      int    `json:"default_year"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	UserAgent        string `json:"user_agent"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	// when set, every http exchange is dumped into this directory
	HttpDumpDir string `json:"http_dump_dir"`

	Columns ColumnsConfig `json:"columns"`
}

func DefaultConfig() Config {
	return Config{
		Mode:           string(inz.ModeHTMLTable),
		SourceURL:      DefaultSourceURL,
		OutputPath:     "/data/2021rv.json",
		Schedule:       "0 5 * * *",
		Timezone:       "UTC",
		DefaultYear:    inz.DefaultYear,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		TimeoutSeconds: 60,
	}
}

func columnMap(labels map[string]string) inz.ColumnMap {
	if len(labels) == 0 {
		return nil
	}
	out := make(inz.ColumnMap, len(labels))
	for label, field := range labels {
		out[label] = inz.Field(field)
	}
	return out
}

func (c Config) Validate() error {
	mode := inz.Mode(c.Mode)
	if !mode.Valid() {
		return fmt.Errorf("unknown mode '%s'", c.Mode)
	}
	if c.SourceURL == "" {
		return fmt.Errorf("source_url must be set")
	}
	if mode.Reconciles() && c.HistoryURL == "" {
		return fmt.Errorf("history_url must be set in %s mode", c.Mode)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must be set")
	}
	return nil
}

// ExtractorOptions translates the config into inz.Options, `toText` is
// the pdf converter.
func (c Config) ExtractorOptions(toText func([]byte) (string, error)) inz.Options {
	opts := inz.Options{
		Mode:            inz.Mode(c.Mode),
		TableColumns:    columnMap(c.Columns.Table),
		SnapshotColumns: columnMap(c.Columns.Snapshot),
		DefaultYear:     c.DefaultYear,
	}
	if opts.Mode == inz.ModePDFRows {
		opts.ToText = toText
	}
	return opts
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
