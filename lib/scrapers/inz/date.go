package inz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

var dateTextRegex = regexp.MustCompile(`^(\w{3}) (\w{3}) (\d{1,2})$`)

// ResolveDate turns a year-less "Fri Dec 31" into a date in `year`. The
// weekday must be a valid abbreviation but is not checked against the
// resulting date, see WeekdayMatches.
func ResolveDate(dateText string, year int) (time.Time, error) {
	match := dateTextRegex.FindStringSubmatch(strings.TrimSpace(dateText))
	if match == nil {
		return time.Time{}, fmt.Errorf("'%s' is not a '<weekday> <month> <day>' date", dateText)
	}

	_, ok := weekdays[strings.ToLower(match[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday '%s' in '%s'", match[1], dateText)
	}
	month, ok := months[strings.ToLower(match[2])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month '%s' in '%s'", match[2], dateText)
	}
	day, err := strconv.Atoi(match[3])
	if err != nil {
		return time.Time{}, err
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March, reject instead
	if date.Month() != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("day %d out of range in '%s' for year %d", day, dateText, year)
	}
	return date, nil
}

// WeekdayMatches reports whether the weekday prefix of `dateText` agrees
// with `date`.
func WeekdayMatches(dateText string, date time.Time) bool {
	fields := strings.Fields(dateText)
	if len(fields) == 0 {
		return false
	}
	weekday, ok := weekdays[strings.ToLower(fields[0])]
	return ok && weekday == date.Weekday()
}

// the 2021 resident visa report lists rows newest first and crosses new
// year exactly once, on this row. everything after it belongs to 2021.
const (
	rolloverDateText = "Fri Dec 31"
	rolloverFirst    = 14
	rolloverSecond   = 36
)

// DefaultYear is the year assumed for rows at the top of the report.
const DefaultYear = 2022

// YearContext carries the year assumed for dates that omit one. It is
// passed by value: parsing returns the context to use for the next row.
type YearContext struct {
	Year       int
	RolledOver bool
}

func NewYearContext(year int) YearContext {
	if year == 0 {
		year = DefaultYear
	}
	return YearContext{Year: year}
}

// Observe applies the new year rollover rule for a parsed row. Only the
// exact sentinel row moves the year, and only once.
func (c YearContext) Observe(dateText string, values []int64) YearContext {
	if c.RolledOver || dateText != rolloverDateText {
		return c
	}
	if len(values) < 2 || values[0] != rolloverFirst || values[1] != rolloverSecond {
		return c
	}
	return YearContext{Year: c.Year - 1, RolledOver: true}
}
