package updater

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"inz-data-scraper/lib/restyutil"
	"inz-data-scraper/lib/scrapers/inz"
	"inz-data-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

type FetcherOptions struct {
	UserAgent        string
	Timeout          time.Duration
	CloudflareBypass bool
	// nil disables message dumps
	Dump restyutil.InstrumentOutput
}

// Fetcher downloads source documents and the published history. Every
// call is a single attempt, a failed cycle is retried by the next
// scheduled one.
type Fetcher struct {
	http *resty.Client
}

func NewFetcher(opts FetcherOptions) Fetcher {
	client := resty.New()
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	if opts.UserAgent != "" {
		client.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	client.SetRetryCount(0)

	telemetry.InstrumentResty(client, "inz.services.updater/http")
	restyutil.InstrumentClient(client, opts.Dump)

	return Fetcher{http: client}
}

// Download GETs `link` and returns the response body. Anything but a 2xx
// is a TransportError.
func (f Fetcher) Download(ctx context.Context, link string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetcher.Download")
	defer span.End()

	res, err := f.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &TransportError{URL: link, Err: err}
	}
	if res.IsError() {
		err := fmt.Errorf("unexpected status %s", res.Status())
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{URL: link, Err: err}
	}

	slog.DebugContext(
		ctx, "downloaded document",
		"url", link,
		"size", len(res.Body()),
		"content_type", res.Header().Get("content-type"),
	)
	return res.Body(), nil
}

// History loads the published record list, `location` is either an
// http(s) url or a path on disk.
func (f Fetcher) History(ctx context.Context, location string) ([]inz.Record, error) {
	var data []byte
	var err error
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = f.Download(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, &BaselineError{Location: location, Err: err}
	}

	records, err := inz.DecodeHistory(data)
	if err != nil {
		return nil, &BaselineError{Location: location, Err: err}
	}
	slog.DebugContext(ctx, "loaded history baseline", "location", location, "records", len(records))
	return records, nil
}
