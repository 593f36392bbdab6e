package commands

import (
	"bytes"
	"strings"
	"testing"

	"inz-data-scraper/lib/scrapers/inz"

	"github.com/stretchr/testify/require"
)

func TestRenderRecords(t *testing.T) {
	var out bytes.Buffer
	renderRecords(&out, []inz.Record{
		{Time: "2022-01-08", Aply: 40, AplyPeople: 30, Appr: 25, ApprPeople: 50, Decl: 2},
	})

	rendered := out.String()
	require.Contains(t, rendered, "APLY_PEOPLE")
	require.Contains(t, rendered, "2022-01-08")
	require.Contains(t, rendered, "40")
}

func TestRenderCumulative(t *testing.T) {
	var out bytes.Buffer
	renderCumulative(&out, []inz.Record{
		{Time: "2022-01-08", Aply: 40},
		{Time: "2022-01-01", Aply: 100},
		{Time: "2021-12-25", Aply: 50},
	})

	lines := strings.Split(out.String(), "\n")
	var body []string
	for _, line := range lines {
		if strings.Contains(line, "-12-") || strings.Contains(line, "-01-") {
			body = append(body, line)
		}
	}
	require.Len(t, body, 3)
	require.Contains(t, body[0], "2022-01-08")
	require.Contains(t, body[0], "190")
	require.Contains(t, body[1], "150")
	require.Contains(t, body[2], "2021-12-25")
}
