package updater

import (
	"context"
	"fmt"

	"inz-data-scraper/lib/pdftext"
	"inz-data-scraper/lib/restyutil"
	"inz-data-scraper/lib/scrapers/inz"
	"inz-data-scraper/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Service is one configured scraper: an Updater plus the place its
// results get published to.
type Service struct {
	updater    Updater
	outputPath string
}

type ServiceOptions struct {
	Config Config
	// overrides the http fetcher built from Config
	Source  Source
	Verbose bool
}

func NewService(opts ServiceOptions) (Service, error) {
	cfg := opts.Config
	err := cfg.Validate()
	if err != nil {
		return Service{}, err
	}

	extractor, err := inz.NewExtractor(cfg.ExtractorOptions(pdftext.PlainText))
	if err != nil {
		return Service{}, err
	}

	source := opts.Source
	if source == nil {
		var dump restyutil.InstrumentOutput
		if opts.Verbose && cfg.HttpDumpDir != "" {
			out, err := restyutil.NewFilesystemOutput(cfg.HttpDumpDir)
			if err != nil {
				return Service{}, fmt.Errorf("http dump dir: %w", err)
			}
			dump = out
		}
		source = NewFetcher(FetcherOptions{
			UserAgent:        cfg.UserAgent,
			Timeout:          cfg.Timeout(),
			CloudflareBypass: cfg.CloudflareBypass,
			Dump:             dump,
		})
	}

	updater, err := NewUpdater(UpdaterOptions{
		SourceUrl:  cfg.SourceURL,
		HistoryUrl: cfg.HistoryURL,
		Source:     source,
		Extractor:  extractor,
		Reconcile:  inz.Mode(cfg.Mode).Reconciles(),
	})
	if err != nil {
		return Service{}, err
	}

	return Service{
		updater:    updater,
		outputPath: cfg.OutputPath,
	}, nil
}

// Cycle runs one update and publishes the result. The output file is
// left untouched when the update fails.
func (s Service) Cycle(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Service.Cycle")
	defer span.End()

	records, err := s.updater.Update(ctx)
	if err == nil {
		err = WriteRecords(ctx, s.outputPath, records)
	}
	if err != nil {
		cycleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "failed")))
		return err
	}
	cycleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "published")))
	recordGauge.Record(ctx, int64(len(records)))
	telemetry.RecordPerfStats(ctx)
	return nil
}
