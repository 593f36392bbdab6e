package inz

import (
	"encoding/json"
	"fmt"
	"time"
)

type historyRecord struct {
	Time       *string `json:"time"`
	Aply       int64   `json:"aply"`
	AplyPeople int64   `json:"aply_people"`
	Appr       int64   `json:"appr"`
	ApprPeople int64   `json:"appr_people"`
	Decl       int64   `json:"decl"`
}

// DecodeHistory reads a previously published record list. The history is
// the baseline of every reconciliation, so anything off about it fails
// the whole decode: invalid json, records without a valid time or two
// records on the same day.
func DecodeHistory(data []byte) ([]Record, error) {
	var raw []historyRecord
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, structural("decode history", err)
	}

	seen := make(map[string]int, len(raw))
	records := make([]Record, len(raw))
	for i, r := range raw {
		if r.Time == nil {
			return nil, structuralf("decode history", "record %d has no time", i)
		}
		_, err := time.Parse(DateLayout, *r.Time)
		if err != nil {
			return nil, structuralf("decode history", "record %d: %w", i, err)
		}
		if prev, ok := seen[*r.Time]; ok {
			return nil, structuralf("decode history", "records %d and %d are both dated %s", prev, i, *r.Time)
		}
		seen[*r.Time] = i

		records[i] = Record{
			Time:       *r.Time,
			Aply:       r.Aply,
			AplyPeople: r.AplyPeople,
			Appr:       r.Appr,
			ApprPeople: r.ApprPeople,
			Decl:       r.Decl,
		}
	}
	return records, nil
}

// EncodeRecords is the persisted form of a record list.
func EncodeRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}
