package inz

import (
	"bufio"
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var weekdayPrefixes = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsDataLine reports whether a line of pdf text looks like a report row.
// Headers, footers and page numbers never start with a weekday.
func IsDataLine(line string) bool {
	line = strings.TrimSpace(line)
	for _, prefix := range weekdayPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// PDFRows extracts the daily rows of the pdf report. Rows carry no year,
// it is resolved with a YearContext threaded through the rows in
// document order.
type PDFRows struct {
	DefaultYear int
	ToText      func(document []byte) (string, error)
}

func (e PDFRows) Extract(ctx context.Context, document []byte) ([]Record, error) {
	text := string(document)
	if e.ToText != nil {
		var err error
		text, err = e.ToText(document)
		if err != nil {
			return nil, structural("read pdf", err)
		}
	}
	return e.ExtractText(ctx, text)
}

func (e PDFRows) ExtractText(ctx context.Context, text string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "PDFRows.ExtractText")
	defer span.End()

	yearCtx := NewYearContext(e.DefaultYear)

	var records []Record
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !IsDataLine(line) {
			continue
		}
		line = strings.ReplaceAll(line, ",", "")

		next, row, err := yearCtx.ParseRow(line)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "parse row")
			return nil, err
		}
		if next.Year != yearCtx.Year {
			slog.InfoContext(ctx, "year rolled over", "row", line, "year", next.Year)
		}
		yearCtx = next

		record, err := rowRecord(row)
		if err != nil {
			return nil, structuralf("extract pdf", "row '%s': %w", line, err)
		}
		// the weekday is taken on faith, mismatches are only reported
		date, _ := time.Parse(DateLayout, row.Date)
		if !WeekdayMatches(rowDateRegex.FindString(line), date) {
			slog.WarnContext(ctx, "weekday does not match resolved date", "row", line, "date", record.Time)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, structural("read pdf text", err)
	}

	SortDescending(records)

	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("year", yearCtx.Year),
	)
	return records, nil
}

func rowRecord(row Row) (Record, error) {
	if len(row.Values) > len(PDFColumns) {
		return Record{}, structuralf(
			"map row",
			"%d numeric columns, expected at most %d",
			len(row.Values), len(PDFColumns),
		)
	}
	record := Record{Time: row.Date}
	for i, value := range row.Values {
		record.Set(PDFColumns[i], value)
	}
	return record, nil
}
