package updater

import (
	"inz-data-scraper/lib/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("inz.services.updater")

var meter = otel.Meter("inz.services.updater")
var cycleCounter, _ = meter.Int64Counter(
	"update_cycles",
	metric.WithDescription("Finished update cycles by outcome."),
)
var recordGauge, _ = meter.Int64Gauge(
	"published_records",
	metric.WithDescription("Records in the last published file."),
)
