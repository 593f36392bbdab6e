package inz

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inz-data-scraper/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tableDateLayout = "2 January 2006"

// HTMLTable extracts the weekly history table. The first body row holds
// the totals of the whole table and is dropped.
type HTMLTable struct {
	Columns ColumnMap
}

// parseCell reads a numeric table cell, blank and placeholder cells are 0.
func parseCell(text string) (int64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if text == "" || text == "-" {
		return 0, nil
	}
	return ParseCount(text)
}

func (e HTMLTable) Extract(ctx context.Context, document []byte) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "HTMLTable.Extract")
	defer span.End()

	_, tableSel, err := findFirstTable(document)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find table")
		return nil, err
	}
	table := htmlutil.ReadTable(tableSel)

	positions, err := e.Columns.Resolve(ctx, table.Header)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve columns")
		return nil, err
	}
	timePos := -1
	for pos, field := range positions {
		if field == FieldTime {
			timePos = pos
		}
	}
	if timePos < 0 {
		err := structuralf("extract table", "no date column in header %q", table.Header)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	body := table.Body
	if len(body) > 0 {
		slog.DebugContext(ctx, "dropping aggregate row", "row", body[0])
		body = body[1:]
	}

	records := make([]Record, 0, len(body))
	for _, cells := range body {
		if len(cells) < len(table.Header) {
			return nil, structuralf(
				"extract table",
				"row %q has %d cells, header has %d",
				cells, len(cells), len(table.Header),
			)
		}

		if strings.EqualFold(strings.TrimSpace(cells[timePos]), "total") {
			continue
		}

		var record Record
		for pos, field := range positions {
			text := cells[pos]
			if field == FieldTime {
				date, err := time.Parse(tableDateLayout, text)
				if err != nil {
					return nil, structural("extract table", err)
				}
				record.Time = date.Format(DateLayout)
				continue
			}
			value, err := parseCell(text)
			if err != nil {
				return nil, structuralf("extract table", "column '%s' of row %q: %w", table.Header[pos], cells, err)
			}
			record.Set(field, value)
		}
		records = append(records, record)
	}

	SortDescending(records)

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}
