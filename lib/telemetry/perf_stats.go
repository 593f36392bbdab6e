package telemetry

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage", metric.WithUnit("%"))
var rssGauge, _ = meter.Int64Gauge("rss_mb", metric.WithUnit("MB"))
var allocGauge, _ = meter.Int64Gauge("allocated_mb", metric.WithUnit("MB"))
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// RecordPerfStats takes one sample of the process' resource usage. It is
// called once per update cycle instead of on a ticker, cycles are a day
// apart and nothing interesting happens in between.
func RecordPerfStats(ctx context.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	allocMb := int64(memStats.Alloc / 1_000_000)
	allocGauge.Record(ctx, allocMb)
	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))

	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		slog.DebugContext(ctx, "failed to inspect own process", "err", err)
		return
	}

	var rssMb int64
	mem, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		rssMb = int64(mem.RSS / 1_000_000)
		rssGauge.Record(ctx, rssMb)
	} else {
		slog.DebugContext(ctx, "failed to read memory usage", "err", err)
	}

	cpuUsage, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		cpuGauge.Record(ctx, cpuUsage)
	} else {
		slog.DebugContext(ctx, "failed to read cpu usage", "err", err)
	}

	slog.DebugContext(
		ctx, "perf stats",
		"allocated_mb", allocMb,
		"rss_mb", rssMb,
		"cpu_percent", cpuUsage,
	)
}
