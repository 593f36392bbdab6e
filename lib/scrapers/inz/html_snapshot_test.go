package inz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const snapshotTable = `<table>
	<tr>
		<th>Applications received</th>
		<th>People included in applications received</th>
		<th>Applications approved</th>
		<th>People included in applications approved</th>
		<th>Applications declined</th>
	</tr>
	<tr><td>108,653</td><td>209,512</td><td>81,234</td><td>160,001</td><td>1,024</td></tr>
</table>`

func TestParseAnnotation(t *testing.T) {
	date, err := ParseAnnotation("Some text. Data valid to approximately 10:30, 8 January 2022. More text.")
	require.NoError(t, err)
	require.Equal(t, time.Date(2022, time.January, 8, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseAnnotation("Data valid to approximately 9:05 14 March 2022.")
	require.NoError(t, err)
	require.Equal(t, time.Date(2022, time.March, 14, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseAnnotation("Data valid to approximately 10:30, 8 Smarch 2022.")
	require.True(t, IsStructural(err))

	_, err = ParseAnnotation("Data valid as of last week.")
	require.True(t, errors.Is(err, ErrAnnotationNotFound))
}

func TestHTMLSnapshot(t *testing.T) {
	document := `<html><body>
		<h2>2021 Resident Visa applications to date</h2>
		` + snapshotTable + `
		<p>Data valid to approximately 10:30, 8&nbsp;January 2022.</p>
	</body></html>`

	extractor := HTMLSnapshot{Columns: DefaultSnapshotColumns()}
	records, err := extractor.Extract(context.Background(), []byte(document))
	require.NoError(t, err)
	require.Equal(t, []Record{{
		Time:       "2022-01-08",
		Aply:       108653,
		AplyPeople: 209512,
		Appr:       81234,
		ApprPeople: 160001,
		Decl:       1024,
	}}, records)
}

func TestHTMLSnapshotErrors(t *testing.T) {
	extractor := HTMLSnapshot{Columns: DefaultSnapshotColumns()}

	_, err := extractor.Extract(context.Background(), []byte(
		`<p>Data valid to approximately 10:30, 8 January 2022.</p>`,
	))
	require.True(t, errors.Is(err, ErrTableNotFound))

	_, err = extractor.Extract(context.Background(), []byte(snapshotTable))
	require.True(t, errors.Is(err, ErrAnnotationNotFound))
	require.False(t, errors.Is(err, ErrTableNotFound))

	_, err = extractor.Extract(context.Background(), []byte(`<table>
		<tr><th>Applications received</th></tr>
		<tr><td>1</td></tr>
		<tr><td>2</td></tr>
	</table>
	<p>Data valid to approximately 10:30, 8 January 2022.</p>`))
	require.True(t, IsStructural(err))

	_, err = extractor.Extract(context.Background(), []byte(`<table>
		<tr><th>Unrelated</th></tr>
		<tr><td>1</td></tr>
	</table>
	<p>Data valid to approximately 10:30, 8 January 2022.</p>`))
	require.True(t, IsStructural(err))
}
