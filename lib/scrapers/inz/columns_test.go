package inz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnMapLookup(t *testing.T) {
	columns := DefaultSnapshotColumns()

	field, ok := columns.Lookup("applications RECEIVED")
	require.True(t, ok)
	require.Equal(t, FieldAply, field)

	field, ok = columns.Lookup("Applications declined (incl. withdrawn)")
	require.True(t, ok)
	require.Equal(t, FieldDecl, field)

	// contains both "applications received" and "people included in
	// applications received"
	field, ok = columns.Lookup("Total people included in applications received")
	require.False(t, ok, field)

	_, ok = columns.Lookup("Notes")
	require.False(t, ok)
}

func TestColumnMapValidate(t *testing.T) {
	require.NoError(t, DefaultTableColumns().Validate())
	require.NoError(t, DefaultSnapshotColumns().Validate())

	require.NoError(t, ColumnMap{"Week ending": FieldTime, "week  ENDING": FieldTime}.Validate())
	require.Error(t, ColumnMap{"Week ending": FieldTime, "week  ENDING": FieldAply}.Validate())
	require.Error(t, ColumnMap{"Visas": Field("visas")}.Validate())
}

func TestColumnMapResolve(t *testing.T) {
	positions, err := DefaultTableColumns().Resolve(context.Background(), []string{
		"Week ending",
		"Notes",
		"Total applications received (provisional)",
	})
	require.NoError(t, err)
	require.Equal(t, map[int]Field{0: FieldTime, 2: FieldAply}, positions)
}
