package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"playstore/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	records []shared.AppRecord
	err     error
}

func (s staticSource) Load(context.Context) ([]shared.AppRecord, error) {
	return s.records, s.err
}

func TestNewCatalog_EmbeddedDataset(t *testing.T) {
	catalog, err := NewCatalog(context.Background(), JSONSource{})
	require.NoError(t, err)
	require.Equal(t, 20, catalog.Len())

	for _, r := range catalog.Records() {
		assert.NotEmpty(t, r.App)
		assert.NotEmpty(t, r.Genres)
		assert.Greater(t, r.Rating, 0.0)
	}

	first := catalog.Records()[0]
	assert.Equal(t, "ROBLOX", first.App)
	assert.Equal(t, shared.Everyone10, first.ContentRating)
	assert.Equal(t, "Adventure;Action & Adventure", first.Genres)
}

func TestNewCatalog_RejectsIncompleteRecords(t *testing.T) {
	tests := map[string]shared.AppRecord{
		"no name":   {Rating: 4, Genres: "Card"},
		"no genres": {App: "A", Rating: 4, Genres: " ; "},
	}

	for name, rec := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalog(context.Background(), staticSource{records: []shared.AppRecord{rec}})
			assert.Error(t, err)
		})
	}
}

func TestNewCatalog_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCatalog(context.Background(), staticSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestJSONSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	data := `[{"App":"Solitaire","Rating":4.7,"Genres":"Card","Content Rating":"Everyone","Reviews":254258}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	records, err := JSONSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, shared.AppRecord{
		App:           "Solitaire",
		Rating:        4.7,
		Genres:        "Card",
		ContentRating: shared.Everyone,
		Reviews:       254258,
	}, records[0])
}

func TestJSONSource_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"App":`), 0o600))

	_, err := JSONSource{Path: filepath.Join(dir, "missing.json")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = JSONSource{Path: bad}.Load(context.Background())
	assert.Error(t, err)
}
