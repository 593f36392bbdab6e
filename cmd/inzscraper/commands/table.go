package commands

import (
	"io"

	"inz-data-scraper/lib/scrapers/inz"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func fieldHeader(prefix string) table.Row {
	row := table.Row{}
	for _, f := range inz.NumericFields {
		row = append(row, prefix+string(f))
	}
	return row
}

func fieldValues(r inz.Record) table.Row {
	row := table.Row{}
	for _, f := range inz.NumericFields {
		row = append(row, r.Get(f))
	}
	return row
}

func rightAligned(count int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, count)
	for i := range configs {
		configs[i] = table.ColumnConfig{
			Number: i + 2,
			Align:  text.AlignRight,
		}
	}
	return configs
}

func renderRecords(w io.Writer, records []inz.Record) {
	t := newTable(w)
	t.AppendHeader(append(table.Row{string(inz.FieldTime)}, fieldHeader("")...))
	for _, r := range records {
		t.AppendRow(append(table.Row{r.Time}, fieldValues(r)...))
	}
	t.SetColumnConfigs(rightAligned(len(inz.NumericFields)))
	t.Render()
}

// renderCumulative prints every period next to the running totals up to
// and including it, newest first.
func renderCumulative(w io.Writer, records []inz.Record) {
	totals := map[string]inz.Record{}
	for _, r := range inz.Cumulative(records) {
		totals[r.Time] = r
	}

	sorted := make([]inz.Record, len(records))
	copy(sorted, records)
	inz.SortDescending(sorted)

	t := newTable(w)
	header := table.Row{string(inz.FieldTime)}
	header = append(header, fieldHeader("")...)
	header = append(header, fieldHeader("total ")...)
	t.AppendHeader(header)
	for _, r := range sorted {
		row := table.Row{r.Time}
		row = append(row, fieldValues(r)...)
		row = append(row, fieldValues(totals[r.Time])...)
		t.AppendRow(row)
	}
	t.SetColumnConfigs(rightAligned(2 * len(inz.NumericFields)))
	t.Render()
}
