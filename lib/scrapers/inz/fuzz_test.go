package inz

import (
	"context"
	"slices"
	"testing"
	"time"
)

// properties:
// - parsing never panics
// - a failed row leaves the year context untouched
// - the year moves back at most once, by exactly one
// - every parsed row resolves to a canonical date
func FuzzParseRow(f *testing.F) {
	f.Add("Fri Dec 31 14 36 . 2 3", 2022, false)
	f.Add("Mon Jan 3 1,200 . .", 2022, false)
	f.Add("Tue Feb 30 1 2", 2021, false)
	f.Add("Fri Dec 31 14 36", 2022, true)
	f.Add("Total applications received", 2022, false)

	f.Fuzz(func(t *testing.T, line string, year int, rolledOver bool) {
		if year < 1 || year > 9999 {
			t.Skip()
		}
		c := YearContext{Year: year, RolledOver: rolledOver}

		next, row, err := c.ParseRow(line)
		if err != nil {
			if next != c {
				t.Fatalf("failed row changed the context: %+v -> %+v", c, next)
			}
			if !IsStructural(err) {
				t.Fatalf("row error is not structural: %v", err)
			}
			return
		}

		switch {
		case next == c:
		case !c.RolledOver && next.RolledOver && next.Year == c.Year-1:
		default:
			t.Fatalf("unexpected transition %+v -> %+v", c, next)
		}
		if _, err := time.Parse(DateLayout, row.Date); err != nil {
			t.Fatalf("row date '%s' is not canonical: %v", row.Date, err)
		}
	})
}

// properties:
// - the merged history sums to the snapshot again
// - times stay unique and descending
// - the input history is never modified
func FuzzReconcile(f *testing.F) {
	f.Add(int64(100), int64(250), int64(50), int64(120), int64(190), int64(400), uint8(7))
	f.Add(int64(0), int64(0), int64(0), int64(0), int64(0), int64(0), uint8(1))
	f.Add(int64(500), int64(900), int64(10), int64(20), int64(1), int64(2), uint8(30))

	f.Fuzz(func(t *testing.T, a1, p1, a2, p2, snapA, snapP int64, days uint8) {
		if days == 0 {
			t.Skip()
		}
		history := []Record{
			{Time: "2022-01-01", Aply: a1, AplyPeople: p1},
			{Time: "2021-12-25", Aply: a2, AplyPeople: p2},
		}
		prior := slices.Clone(history)
		latest := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
		snapshot := Record{
			Time:       latest.AddDate(0, 0, int(days)).Format(DateLayout),
			Aply:       snapA,
			AplyPeople: snapP,
		}

		merged, err := Reconcile(context.Background(), snapshot, history)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(prior, history) {
			t.Fatal("history was modified")
		}
		if len(merged) != 3 || merged[0].Time != snapshot.Time {
			t.Fatalf("unexpected merge %v", merged)
		}
		total := Sum(merged)
		if total.Aply != snapA || total.AplyPeople != snapP {
			t.Fatalf("sum %v does not match snapshot %v", total, snapshot)
		}
		for i := 1; i < len(merged); i++ {
			if merged[i-1].Time <= merged[i].Time {
				t.Fatalf("not strictly descending: %v", merged)
			}
		}
	})
}
