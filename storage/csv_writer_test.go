package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"booking-scraper/config"
	"booking-scraper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHotels() []models.Hotel {
	return []models.Hotel{
		{Name: "Hotel Alpha", Location: "Paris, France", ReviewScore: "8.4", ReviewCount: "1,204 reviews", Price: "US$210"},
		{Name: "Hotel \"Bravo\"", Location: "Lyon", ReviewScore: "7.2", ReviewCount: "96 reviews", Price: "US$88"},
		{Name: "Hotel Charlie", Location: models.Unavailable, ReviewScore: "9.0", ReviewCount: models.Unavailable, Price: "US$320"},
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	hotels := sampleHotels()

	require.NoError(t, NewCSVWriter(path, config.ModeOverwrite).Write(hotels))

	rows := readRows(t, path)
	require.Len(t, rows, len(hotels)+1)
	assert.Equal(t, []string{"Hotel Name", "Location", "Review Score", "Number of Reviews", "Price"}, rows[0])

	for i, h := range hotels {
		assert.Equal(t, []string{h.Name, h.Location, h.ReviewScore, h.ReviewCount, h.Price}, rows[i+1])
	}
}

func TestWritePreservesInputOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	hotels := sampleHotels()

	require.NoError(t, NewCSVWriter(path, config.ModeOverwrite).Write(hotels))

	rows := readRows(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, "Hotel Alpha", rows[1][0])
	assert.Equal(t, "Hotel \"Bravo\"", rows[2][0])
	assert.Equal(t, "Hotel Charlie", rows[3][0])
}

func TestOverwriteModeIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	w := NewCSVWriter(path, config.ModeOverwrite)
	hotels := sampleHotels()

	require.NoError(t, w.Write(hotels))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(hotels))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAppendModeAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	w := NewCSVWriter(path, config.ModeAppend)
	hotels := sampleHotels()

	require.NoError(t, w.Write(hotels))
	require.NoError(t, w.Write(hotels))

	rows := readRows(t, path)
	// Two header rows plus 2×N data rows: the documented accumulation
	// behavior of append mode.
	require.Len(t, rows, 2*(len(hotels)+1))
	assert.Equal(t, rows[0], rows[len(hotels)+1])
}

func TestWriteCreatesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "hotels.csv")

	require.NoError(t, NewCSVWriter(path, config.ModeOverwrite).Write(sampleHotels()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteUnwritablePath(t *testing.T) {
	// A directory as the target path makes the open fail.
	err := NewCSVWriter(t.TempDir(), config.ModeOverwrite).Write(sampleHotels())
	require.Error(t, err)
}
