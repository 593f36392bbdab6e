package inz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func latestTime(records []Record) string {
	latest := ""
	for _, r := range records {
		if r.Time > latest {
			latest = r.Time
		}
	}
	return latest
}

// Reconcile merges a cumulative snapshot into a history of per-period
// records. The snapshot becomes a new record holding the difference
// between its totals and the sum of the history.
//
// A snapshot dated the same as the newest history record means the source
// hasn't been updated, the history is returned unchanged. Any other date
// already in the history is ErrStaleSnapshot, a second record for the same
// day would break the series. `history` itself is never modified.
func Reconcile(ctx context.Context, snapshot Record, history []Record) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Reconcile")
	defer span.End()

	if snapshot.Time == "" {
		return nil, structuralf("reconcile", "snapshot has no time")
	}

	merged := slices.Clone(history)

	latest := latestTime(history)
	span.SetAttributes(
		attribute.String("snapshot", snapshot.Time),
		attribute.String("latest", latest),
	)
	if snapshot.Time == latest {
		slog.InfoContext(ctx, "source not updated since last run", "time", snapshot.Time)
		return merged, nil
	}

	if slices.ContainsFunc(history, func(r Record) bool { return r.Time == snapshot.Time }) {
		err := structural("reconcile", fmt.Errorf("%w: %s", ErrStaleSnapshot, snapshot.Time))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if snapshot.Time < latest {
		slog.WarnContext(ctx, "snapshot is older than the latest history record", "snapshot", snapshot.Time, "latest", latest)
	}

	total := Sum(history)
	delta := Record{Time: snapshot.Time}
	for _, f := range NumericFields {
		value := snapshot.Get(f) - total.Get(f)
		if value < 0 {
			slog.WarnContext(
				ctx, "snapshot total is below history sum",
				"field", f,
				"snapshot", snapshot.Get(f),
				"history", total.Get(f),
			)
		}
		delta.Set(f, value)
	}
	slog.DebugContext(ctx, "computed delta", "delta", delta)

	merged = append([]Record{delta}, merged...)
	SortDescending(merged)
	return merged, nil
}
