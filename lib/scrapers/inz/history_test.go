package inz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHistory(t *testing.T) {
	records, err := DecodeHistory([]byte(`[
		{"time": "2022-01-01", "aply": 100, "aply_people": 250, "appr": 10, "appr_people": 20, "decl": 1},
		{"time": "2021-12-25", "aply": 50, "aply_people": 120, "appr": 5, "appr_people": 9}
	]`))
	require.NoError(t, err)
	require.Equal(t, []Record{
		{Time: "2022-01-01", Aply: 100, AplyPeople: 250, Appr: 10, ApprPeople: 20, Decl: 1},
		{Time: "2021-12-25", Aply: 50, AplyPeople: 120, Appr: 5, ApprPeople: 9},
	}, records)

	records, err = DecodeHistory([]byte(`[]`))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDecodeHistoryErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `<html>`},
		{name: "not a list", data: `{"time": "2022-01-01"}`},
		{name: "missing time", data: `[{"aply": 1}]`},
		{name: "bad time", data: `[{"time": "1 January 2022"}]`},
		{name: "duplicate time", data: `[{"time": "2022-01-01"}, {"time": "2022-01-01"}]`},
		{name: "fractional count", data: `[{"time": "2022-01-01", "aply": 1.5}]`},
	}
	for _, test := range cases {
		_, err := DecodeHistory([]byte(test.data))
		require.Error(t, err, test.name)
		require.True(t, IsStructural(err), test.name)
	}
}

func TestEncodeRecords(t *testing.T) {
	data, err := EncodeRecords(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	data, err = EncodeRecords([]Record{{Time: "2022-01-03", Aply: 120, AplyPeople: 150, Appr: 80, ApprPeople: 95, Decl: 10}})
	require.NoError(t, err)
	require.JSONEq(t, `[{"time":"2022-01-03","aply":120,"aply_people":150,"appr":80,"appr_people":95,"decl":10}]`, string(data))

	decoded, err := DecodeHistory(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
}
