package updater

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"inz-data-scraper/lib/scrapers/inz"

	"github.com/stretchr/testify/require"
)

func TestWriteRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "2021rv.json")

	records := []inz.Record{
		{Time: "2022-01-08", Aply: 40, AplyPeople: 30, Appr: 25, ApprPeople: 50},
	}
	require.NoError(t, WriteRecords(context.Background(), path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `[{"time":"2022-01-08","aply":40,"aply_people":30,"appr":25,"appr_people":50,"decl":0}]`, string(data))

	require.NoError(t, WriteRecords(context.Background(), path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}
