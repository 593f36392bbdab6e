package inz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveDate(t *testing.T) {
	cases := []struct {
		text     string
		year     int
		expected time.Time
	}{
		{text: "Fri Dec 31", year: 2021, expected: time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{text: "Mon Jan 3", year: 2022, expected: time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC)},
		{text: "tue feb 1", year: 2022, expected: time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC)},
		// weekday is not cross checked
		{text: "Sun Jan 3", year: 2022, expected: time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, test := range cases {
		date, err := ResolveDate(test.text, test.year)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expected, date, test.text)
	}
}

func TestResolveDateInvalid(t *testing.T) {
	cases := []struct {
		text string
		year int
	}{
		{text: "Fri Dec", year: 2022},
		{text: "Xyz Dec 31", year: 2022},
		{text: "Fri Foo 31", year: 2022},
		{text: "Mon Feb 29", year: 2022},
		{text: "Mon Apr 31", year: 2022},
		{text: "Fri Dec 31 extra", year: 2022},
	}
	for _, test := range cases {
		_, err := ResolveDate(test.text, test.year)
		require.Error(t, err, test.text)
	}

	_, err := ResolveDate("Tue Feb 29", 2028)
	require.NoError(t, err)
}

func TestWeekdayMatches(t *testing.T) {
	date := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)
	require.True(t, WeekdayMatches("Fri Dec 31", date))
	require.False(t, WeekdayMatches("Thu Dec 31", date))
	require.False(t, WeekdayMatches("", date))
}

func TestYearContextObserve(t *testing.T) {
	start := NewYearContext(2022)
	require.Equal(t, 2022, start.Year)
	require.Equal(t, DefaultYear, NewYearContext(0).Year)

	cases := []struct {
		name     string
		text     string
		values   []int64
		expected YearContext
	}{
		{name: "sentinel", text: "Fri Dec 31", values: []int64{14, 36, 0}, expected: YearContext{Year: 2021, RolledOver: true}},
		{name: "other date", text: "Thu Dec 30", values: []int64{14, 36}, expected: start},
		{name: "other signature", text: "Fri Dec 31", values: []int64{14, 35}, expected: start},
		{name: "swapped signature", text: "Fri Dec 31", values: []int64{36, 14}, expected: start},
		{name: "short row", text: "Fri Dec 31", values: []int64{14}, expected: start},
		{name: "different spelling", text: "fri dec 31", values: []int64{14, 36}, expected: start},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, start.Observe(test.text, test.values), test.name)
	}
}

func TestYearContextRollsOverOnce(t *testing.T) {
	ctx := NewYearContext(2022)
	for i := 0; i < 3; i++ {
		ctx = ctx.Observe("Fri Dec 31", []int64{14, 36})
	}
	require.Equal(t, YearContext{Year: 2021, RolledOver: true}, ctx)
}
