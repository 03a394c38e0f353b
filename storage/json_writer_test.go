package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"booking-scraper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.json")
	hotels := sampleHotels()

	require.NoError(t, NewJSONWriter(path).Write(hotels))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []models.Hotel
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, hotels, got)
}

func TestJSONWriteFieldKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.json")

	require.NoError(t, NewJSONWriter(path).Write(sampleHotels()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.NotEmpty(t, raw)

	for _, key := range []string{"hotel_name", "location", "review_score", "review_count", "price"} {
		assert.Contains(t, raw[0], key)
	}
}

func TestJSONWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.json")
	w := NewJSONWriter(path)

	require.NoError(t, w.Write(sampleHotels()))
	require.NoError(t, w.Write(sampleHotels()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []models.Hotel
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 1)
}

func TestJSONWriteUnwritablePath(t *testing.T) {
	err := NewJSONWriter(t.TempDir()).Write(sampleHotels())
	require.Error(t, err)
}
