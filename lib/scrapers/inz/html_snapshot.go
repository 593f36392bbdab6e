package inz

import (
	"context"
	"regexp"
	"time"

	"inz-data-scraper/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var annotationRegex = regexp.MustCompile(
	`Data valid to approximately (\d{1,2}):(\d{2}),? (\d{1,2} [A-Za-z]+ \d{4})\.`,
)

// HTMLSnapshot extracts the single "to date" row of a page, dated by the
// page's "Data valid to approximately HH:MM, D Month YYYY." annotation.
// The counts are running totals, see Reconcile.
type HTMLSnapshot struct {
	Columns ColumnMap
}

// ParseAnnotation finds the publication date in the text of a page.
func ParseAnnotation(text string) (time.Time, error) {
	match := annotationRegex.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, structural("find annotation", ErrAnnotationNotFound)
	}
	date, err := time.Parse(tableDateLayout, match[3])
	if err != nil {
		return time.Time{}, structural("parse annotation", err)
	}
	return date, nil
}

func (e HTMLSnapshot) Snapshot(ctx context.Context, document []byte) (Record, error) {
	ctx, span := tracer.Start(ctx, "HTMLSnapshot.Snapshot")
	defer span.End()

	doc, tableSel, err := findFirstTable(document)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find table")
		return Record{}, err
	}

	date, err := ParseAnnotation(htmlutil.CleanText(doc.Find("body")))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find annotation")
		return Record{}, err
	}

	table := htmlutil.ReadTable(tableSel)
	if len(table.Body) != 1 {
		return Record{}, structuralf("extract snapshot", "expected exactly one row, got %d", len(table.Body))
	}
	cells := table.Body[0]
	if len(cells) < len(table.Header) {
		return Record{}, structuralf(
			"extract snapshot",
			"row %q has %d cells, header has %d",
			cells, len(cells), len(table.Header),
		)
	}

	positions, err := e.Columns.Resolve(ctx, table.Header)
	if err != nil {
		return Record{}, err
	}
	if len(positions) == 0 {
		return Record{}, structuralf("extract snapshot", "no known column in header %q", table.Header)
	}

	record := Record{Time: date.Format(DateLayout)}
	for pos, field := range positions {
		if field == FieldTime {
			continue
		}
		value, err := parseCell(cells[pos])
		if err != nil {
			return Record{}, structuralf("extract snapshot", "column '%s': %w", table.Header[pos], err)
		}
		record.Set(field, value)
	}

	span.SetAttributes(attribute.String("time", record.Time))
	return record, nil
}

func (e HTMLSnapshot) Extract(ctx context.Context, document []byte) ([]Record, error) {
	record, err := e.Snapshot(ctx, document)
	if err != nil {
		return nil, err
	}
	return []Record{record}, nil
}
