package inz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	cases := []struct {
		line         string
		expected     Row
		expectedYear int
	}{
		{
			line:         "Mon Jan 3 120 150 80 95 10",
			expected:     Row{Date: "2022-01-03", Values: []int64{120, 150, 80, 95, 10}},
			expectedYear: 2022,
		},
		{
			line:         "  Tue Jan 4   .  3 . 1  ",
			expected:     Row{Date: "2022-01-04", Values: []int64{0, 3, 0, 1}},
			expectedYear: 2022,
		},
		{
			line:         "Fri Dec 31 14 36 . 2 .",
			expected:     Row{Date: "2021-12-31", Values: []int64{14, 36, 0, 2, 0}},
			expectedYear: 2021,
		},
		{
			line:         "Sat Jan 1",
			expected:     Row{Date: "2022-01-01", Values: []int64{}},
			expectedYear: 2022,
		},
	}

	for _, test := range cases {
		next, row, err := NewYearContext(2022).ParseRow(test.line)
		require.NoError(t, err, test.line)
		require.Equal(t, test.expectedYear, next.Year, test.line)
		diff := cmp.Diff(test.expected, row)
		if diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestParseRowPlaceholderIsZero(t *testing.T) {
	_, row, err := NewYearContext(2022).ParseRow("Wed Jan 5 . . . . .")
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 0, 0, 0}, row.Values)
}

func TestParseRowYearCarriesOver(t *testing.T) {
	lines := []string{
		"Mon Jan 3 5 6",
		"Fri Dec 31 14 36",
		"Thu Dec 30 1 2",
		// a second sentinel row must not move the year again
		"Fri Dec 31 14 36",
	}
	expected := []string{"2022-01-03", "2021-12-31", "2021-12-30", "2021-12-31"}

	ctx := NewYearContext(2022)
	for i, line := range lines {
		var row Row
		var err error
		ctx, row, err = ctx.ParseRow(line)
		require.NoError(t, err)
		require.Equal(t, expected[i], row.Date)
	}
	require.Equal(t, 2021, ctx.Year)
}

func TestParseRowErrors(t *testing.T) {
	ctx := NewYearContext(2022)

	next, _, err := ctx.ParseRow("Total applications received")
	require.True(t, errors.Is(err, ErrDateNotFound))
	require.True(t, IsStructural(err))
	require.Equal(t, ctx, next)

	_, _, err = ctx.ParseRow("Mon Jan 3 12 x 4")
	require.True(t, IsStructural(err))

	_, _, err = ctx.ParseRow("Mon Jan 3 1.5 4")
	require.True(t, IsStructural(err))

	// a malformed sentinel row must not roll the year over
	next, _, err = ctx.ParseRow("Fri Dec 31 14 36 oops")
	require.Error(t, err)
	require.Equal(t, 2022, next.Year)
}
