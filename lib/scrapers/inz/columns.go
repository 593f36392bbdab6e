package inz

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"inz-data-scraper/lib/textutil"
)

// ColumnMap maps the caption of a source column to the Record field it
// holds. Captions are compared with textutil.NormalizeLabel.
type ColumnMap map[string]Field

// DefaultTableColumns are the captions of the weekly 2021 resident visa
// table.
func DefaultTableColumns() ColumnMap {
	return ColumnMap{
		"Week ending":                            FieldTime,
		"Total applications received":            FieldAply,
		"Total number of people included":        FieldAplyPeople,
		"Applications approved and visas issued": FieldAppr,
		"People approved and issued visas":       FieldApprPeople,
		"Declined Failed Instructions":           FieldDecl,
	}
}

// DefaultSnapshotColumns are the captions of the single row "to date"
// table. It has no date column, the date comes from the page annotation.
func DefaultSnapshotColumns() ColumnMap {
	return ColumnMap{
		"Applications received":                    FieldAply,
		"People included in applications received": FieldAplyPeople,
		"Applications approved":                    FieldAppr,
		"People included in applications approved": FieldApprPeople,
		"Applications declined":                    FieldDecl,
	}
}

// PDFColumns is the positional meaning of the numbers on a pdf report row.
var PDFColumns = []Field{
	FieldAply,
	FieldAplyPeople,
	FieldAppr,
	FieldApprPeople,
	FieldDecl,
}

// Validate rejects captions mapped to fields a Record doesn't have and
// captions that only differ in case or spacing but map to different
// fields.
func (m ColumnMap) Validate() error {
	normalized := make(map[string]string, len(m))
	for _, label := range m.labels() {
		field := m[label]
		key := textutil.NormalizeLabel(label)
		if other, ok := normalized[key]; ok && m[other] != field {
			return fmt.Errorf("columns '%s' and '%s' are the same caption mapped to '%s' and '%s'", other, label, m[other], field)
		}
		normalized[key] = label

		if field == FieldTime {
			continue
		}
		var r Record
		err := r.Set(field, 0)
		if err != nil {
			return fmt.Errorf("column '%s': %w", label, err)
		}
	}
	return nil
}

// Lookup finds the field for a caption. An exact (normalized) match wins,
// otherwise a caption containing exactly one known label maps to it, so
// "Applications received (incl. withdrawn)" still resolves.
func (m ColumnMap) Lookup(label string) (Field, bool) {
	normalized := textutil.NormalizeLabel(label)
	var contained []string
	for _, known := range m.labels() {
		if textutil.NormalizeLabel(known) == normalized {
			return m[known], true
		}
		if textutil.MatchName(label, []string{known}) {
			contained = append(contained, known)
		}
	}
	if len(contained) == 1 {
		return m[contained[0]], true
	}
	return "", false
}

func (m ColumnMap) labels() []string {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Resolve maps header positions to fields. Columns without a mapping are
// left out of the result (and reported), two columns mapping to the same
// field is an error.
func (m ColumnMap) Resolve(ctx context.Context, header []string) (map[int]Field, error) {
	positions := make(map[int]Field, len(header))
	seen := make(map[Field]string, len(header))

	for i, label := range header {
		field, ok := m.Lookup(label)
		if !ok {
			closest, score := textutil.Closest(label, m.labels())
			slog.WarnContext(
				ctx, "dropping unmapped column",
				"column", label,
				"closest", closest,
				"similarity", score,
			)
			continue
		}
		previous, duplicate := seen[field]
		if duplicate {
			return nil, structuralf(
				"resolve columns",
				"columns '%s' and '%s' both map to '%s'",
				previous, label, field,
			)
		}
		seen[field] = label
		positions[i] = field
	}

	return positions, nil
}
