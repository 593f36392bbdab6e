package updater

import (
	"context"
	"fmt"
	"log/slog"

	"inz-data-scraper/lib/scrapers/inz"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Source interface {
	Download(ctx context.Context, link string) ([]byte, error)
}

type Baseline interface {
	History(ctx context.Context, location string) ([]inz.Record, error)
}

type Updater struct {
	sourceUrl  string
	historyUrl string
	reconcile  bool
	source     Source
	baseline   Baseline
	extractor  inz.Extractor
}

type UpdaterOptions struct {
	SourceUrl  string
	HistoryUrl string
	Source     Source
	// defaults to Source when it also implements Baseline
	Baseline  Baseline
	Extractor inz.Extractor
	// reconcile the extracted snapshot against the history baseline
	Reconcile bool
}

func NewUpdater(opts UpdaterOptions) (Updater, error) {
	if opts.Source == nil {
		return Updater{}, fmt.Errorf("source must not be nil")
	}
	if opts.Extractor == nil {
		return Updater{}, fmt.Errorf("extractor must not be nil")
	}
	baseline := opts.Baseline
	if baseline == nil {
		baseline, _ = opts.Source.(Baseline)
	}
	if opts.Reconcile {
		if baseline == nil {
			return Updater{}, fmt.Errorf("reconciling requires a history baseline")
		}
		if opts.HistoryUrl == "" {
			return Updater{}, fmt.Errorf("reconciling requires a history url")
		}
	}
	return Updater{
		sourceUrl:  opts.SourceUrl,
		historyUrl: opts.HistoryUrl,
		reconcile:  opts.Reconcile,
		source:     opts.Source,
		baseline:   baseline,
		extractor:  opts.Extractor,
	}, nil
}

// Update runs one download, extract and (optionally) reconcile pass and
// returns the full record list that should be published.
func (u Updater) Update(ctx context.Context) ([]inz.Record, error) {
	ctx, span := tracer.Start(ctx, "Updater.Update")
	defer span.End()

	document, err := u.source.Download(ctx, u.sourceUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "download source")
		return nil, err
	}

	records, err := u.extractor.Extract(ctx, document)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extract records")
		return nil, err
	}
	slog.DebugContext(ctx, "extracted records", "count", len(records), "records", records)

	if u.reconcile {
		if len(records) != 1 {
			err := fmt.Errorf("expected a single snapshot record, got %d", len(records))
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		history, err := u.baseline.History(ctx, u.historyUrl)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "load history")
			return nil, err
		}
		records, err = inz.Reconcile(ctx, records[0], history)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "reconcile")
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	if len(records) > 0 {
		span.SetAttributes(attribute.String("latest", records[0].Time))
	}
	slog.InfoContext(ctx, "update finished", "count", len(records), "records", records)

	return records, nil
}
