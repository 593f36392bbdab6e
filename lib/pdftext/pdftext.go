package pdftext

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ledongthuc/pdf"
)

// glyph runs closer than this fraction of the font size belong to the
// same word
const wordGap = 0.2

// joinRow glues the text runs of one visual row back together. Runs are
// often single glyphs, so a space is only inserted where the gap between
// two runs is wide enough to be one.
func joinRow(content pdf.TextHorizontal) string {
	var line strings.Builder
	prevEnd := 0.0
	for i, text := range content {
		if text.S == "" {
			continue
		}
		if i > 0 && text.X-prevEnd > text.FontSize*wordGap {
			line.WriteByte(' ')
		}
		line.WriteString(text.S)
		prevEnd = text.X + text.W
	}
	return strings.Join(strings.Fields(line.String()), " ")
}

// groupRows buckets positioned glyphs by baseline, top of the page first
// and left to right within a row.
func groupRows(glyphs []pdf.Text) []pdf.TextHorizontal {
	byLine := map[float64]pdf.TextHorizontal{}
	var baselines []float64
	for _, g := range glyphs {
		y := math.Round(g.Y)
		if _, ok := byLine[y]; !ok {
			baselines = append(baselines, y)
		}
		byLine[y] = append(byLine[y], g)
	}
	slices.Sort(baselines)
	slices.Reverse(baselines)

	rows := make([]pdf.TextHorizontal, len(baselines))
	for i, y := range baselines {
		row := byLine[y]
		slices.SortStableFunc(row, func(a, b pdf.Text) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			}
			return 0
		})
		rows[i] = row
	}
	return rows
}

// pageGlyphs lays out a page, the pdf package panics on content streams
// it cannot interpret.
func pageGlyphs(page pdf.Page) (glyphs []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return page.Content().Text, nil
}

// PlainText renders a pdf as newline delimited text, one line per visual
// row of each page. Words on a row are joined with single spaces, so a
// table row comes out as "Fri Dec 31 14 36 . 2 3".
func PlainText(document []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		glyphs, err := pageGlyphs(page)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		for _, row := range groupRows(glyphs) {
			line := joinRow(row)
			if line == "" {
				continue
			}
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}
