package inz

import (
	"fmt"
	"slices"
	"strings"
)

// DateLayout is the canonical form of Record.Time.
const DateLayout = "2006-01-02"

// Field is the canonical name of a Record column, identical to its json key.
type Field string

const (
	FieldTime       Field = "time"
	FieldAply       Field = "aply"
	FieldAplyPeople Field = "aply_people"
	FieldAppr       Field = "appr"
	FieldApprPeople Field = "appr_people"
	FieldDecl       Field = "decl"
)

// NumericFields lists every count column in output order.
var NumericFields = []Field{
	FieldAply,
	FieldAplyPeople,
	FieldAppr,
	FieldApprPeople,
	FieldDecl,
}

// Record is one observation of the processing statistics.
type Record struct {
	Time       string `json:"time"`
	Aply       int64  `json:"aply"`
	AplyPeople int64  `json:"aply_people"`
	Appr       int64  `json:"appr"`
	ApprPeople int64  `json:"appr_people"`
	Decl       int64  `json:"decl"`
}

func (r *Record) count(field Field) (*int64, error) {
	switch field {
	case FieldAply:
		return &r.Aply, nil
	case FieldAplyPeople:
		return &r.AplyPeople, nil
	case FieldAppr:
		return &r.Appr, nil
	case FieldApprPeople:
		return &r.ApprPeople, nil
	case FieldDecl:
		return &r.Decl, nil
	}
	return nil, fmt.Errorf("unknown count field '%s'", field)
}

func (r Record) String() string {
	parts := make([]string, 0, len(NumericFields)+1)
	parts = append(parts, fmt.Sprintf("%s=%s", FieldTime, r.Time))
	for _, f := range NumericFields {
		parts = append(parts, fmt.Sprintf("%s=%d", f, r.Get(f)))
	}
	return strings.Join(parts, " ")
}

// Get returns the value of a count field, 0 for anything else.
func (r Record) Get(field Field) int64 {
	ptr, err := r.count(field)
	if err != nil {
		return 0
	}
	return *ptr
}

// Set assigns a count field.
func (r *Record) Set(field Field, value int64) error {
	ptr, err := r.count(field)
	if err != nil {
		return err
	}
	*ptr = value
	return nil
}

// SortDescending orders records newest first. Canonical dates sort
// lexically, so no parsing is needed.
func SortDescending(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(b.Time, a.Time)
	})
}

// Sum adds up every count field, the Time of the result is empty.
func Sum(records []Record) Record {
	var total Record
	for _, r := range records {
		for _, f := range NumericFields {
			total.Set(f, total.Get(f)+r.Get(f))
		}
	}
	return total
}

// Cumulative turns per-period records into running totals, oldest first.
func Cumulative(records []Record) []Record {
	ascending := slices.Clone(records)
	SortDescending(ascending)
	slices.Reverse(ascending)

	var running Record
	for i, r := range ascending {
		for _, f := range NumericFields {
			running.Set(f, running.Get(f)+r.Get(f))
		}
		running.Time = r.Time
		ascending[i] = running
	}
	return ascending
}
