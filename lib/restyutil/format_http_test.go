package restyutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestFormatRequestBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	require.Equal(t, "", formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(req))

	req, err = http.NewRequest(http.MethodPost, "http://example.com", strings.NewReader("year=2022"))
	require.NoError(t, err)
	require.Equal(t, "year=2022", formatRequestBody(req))
}

func TestInstrumentClientPostBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	out := memoryOutput{}
	client := resty.New()
	InstrumentClient(client, out)

	_, err := client.R().SetBody("year=2022").Post(srv.URL)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, out["1"], "year=2022")
}
