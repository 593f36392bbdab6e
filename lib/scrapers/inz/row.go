package inz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder marks an empty cell in the report, it counts as 0.
const Placeholder = "."

var rowDateRegex = regexp.MustCompile(`\w{3} \w{3} \d{1,2}`)

// Row is a parsed line of the report: a canonical date followed by the
// numeric columns in the order they appear.
type Row struct {
	Date   string
	Values []int64
}

// ParseCount parses one numeric cell. Thousands separators must have been
// removed already.
func ParseCount(token string) (int64, error) {
	if token == Placeholder {
		return 0, nil
	}
	return strconv.ParseInt(token, 10, 64)
}

// ParseRow parses a line such as "Fri Dec 31 14 36 . 2 3". The returned
// context must be used for the following row.
func (c YearContext) ParseRow(line string) (YearContext, Row, error) {
	dateText := rowDateRegex.FindString(line)
	if dateText == "" {
		return c, Row{}, structural("parse row", fmt.Errorf("%w: '%s'", ErrDateNotFound, line))
	}

	rest := strings.TrimSpace(strings.ReplaceAll(line, dateText, ""))
	tokens := strings.Fields(rest)
	values := make([]int64, len(tokens))
	for i, token := range tokens {
		value, err := ParseCount(token)
		if err != nil {
			return c, Row{}, structuralf("parse row", "column %d of '%s': %w", i+1, line, err)
		}
		values[i] = value
	}

	next := c.Observe(dateText, values)
	date, err := ResolveDate(dateText, next.Year)
	if err != nil {
		return c, Row{}, structural("parse row", err)
	}

	return next, Row{
		Date:   date.Format(DateLayout),
		Values: values,
	}, nil
}
