package inz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Extractor turns a raw source document into records.
type Extractor interface {
	Extract(ctx context.Context, document []byte) ([]Record, error)
}

// Mode selects the Extractor variant for a source.
type Mode string

const (
	// ModeHTMLTable reads a weekly history table off an html page.
	ModeHTMLTable Mode = "html_table"
	// ModeHTMLSnapshot reads a single cumulative "to date" row off an
	// html page, it must be reconciled against the published history.
	ModeHTMLSnapshot Mode = "html_snapshot"
	// ModePDFRows reads daily rows out of the text of a pdf report.
	ModePDFRows Mode = "pdf_rows"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeHTMLTable, ModeHTMLSnapshot, ModePDFRows:
		return true
	}
	return false
}

// Reconciles reports whether records extracted in this mode are running
// totals that need to go through Reconcile before they are persisted.
func (m Mode) Reconciles() bool {
	return m == ModeHTMLSnapshot
}

type Options struct {
	Mode            Mode
	TableColumns    ColumnMap
	SnapshotColumns ColumnMap
	// year assumed for the first rows of a pdf report, 0 means DefaultYear
	DefaultYear int
	// converts a pdf into newline delimited text, nil means the document
	// is text already
	ToText func(document []byte) (string, error)
}

func NewExtractor(opts Options) (Extractor, error) {
	switch opts.Mode {
	case ModeHTMLTable:
		columns := opts.TableColumns
		if columns == nil {
			columns = DefaultTableColumns()
		}
		if err := columns.Validate(); err != nil {
			return nil, err
		}
		return HTMLTable{Columns: columns}, nil
	case ModeHTMLSnapshot:
		columns := opts.SnapshotColumns
		if columns == nil {
			columns = DefaultSnapshotColumns()
		}
		if err := columns.Validate(); err != nil {
			return nil, err
		}
		return HTMLSnapshot{Columns: columns}, nil
	case ModePDFRows:
		return PDFRows{
			DefaultYear: opts.DefaultYear,
			ToText:      opts.ToText,
		}, nil
	}
	return nil, fmt.Errorf("unknown extraction mode '%s'", opts.Mode)
}

func findFirstTable(document []byte) (*goquery.Document, *goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return nil, nil, structural("parse html", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil, structural("find table", ErrTableNotFound)
	}
	return doc, table, nil
}
