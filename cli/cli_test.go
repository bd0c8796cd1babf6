package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/amonks/lineup/config"
	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recs = []data.DisplayRecord{
	{Name: "DJ X", Genre: "Techno", Day: "Fredag (2024-07-12)", Stage: "Okänd scen", Description: "Ingen beskrivning tillgänglig."},
	{Name: "The Rocks", Genre: "Rock", Day: "Lördag (2024-07-13)", Stage: "Main Stage", Description: "Loud."},
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, recs, []string{"name", "stage"}, 1200))

	assert.Equal(t, ""+
		"name       stage\n"+
		"DJ X       Okänd scen\n"+
		"The Rocks  Main Stage\n"+
		"\n"+
		"2 of 1,200 artists\n", buf.String())
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, nil, columns, 3))
	assert.Equal(t, "Inga artister hittades.\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, recs))

	var got []data.DisplayRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, recs, got)
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	writeCatalog(&buf, data.Catalog{
		Genres: []string{"Rock", "Rock"},
		Days:   []data.DayOption{{Value: "Friday", Label: "Fredag (2024-07-12)"}},
		Stages: nil,
	})
	assert.Equal(t, ""+
		"GENRES (2)\n"+
		"  Rock\n"+
		"  Rock\n"+
		"DAYS (1)\n"+
		"  Friday\tFredag (2024-07-12)\n"+
		"STAGES (0)\n", buf.String())
}

type memStore map[string]string

func (m memStore) Get(key string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("setting '%s': %w", key, db.ErrNotSet)
}

func TestFetchWithoutCredentials(t *testing.T) {
	_, err := fetch(context.Background(), memStore{"space_id": "abc"})
	assert.ErrorIs(t, err, failure.ErrConfig)
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestDBFilename(t *testing.T) {
	t.Setenv("LINEUP_DB", "")
	assert.Equal(t, "lineup.db", dbFilename())

	t.Setenv("LINEUP_DB", "/tmp/other.db")
	assert.Equal(t, "/tmp/other.db", dbFilename())
}
