package inz

import "inz-data-scraper/lib/telemetry"

var tracer = telemetry.Tracer("inz.lib.scrapers.inz")
