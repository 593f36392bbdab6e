package main

import (
	"inz-data-scraper/cmd/inzscraper/commands"
	"inz-data-scraper/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
