package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"booking-scraper/models"
	"booking-scraper/utils"
)

// JSONWriter saves hotels as an indented JSON array of objects.
type JSONWriter struct {
	path string
}

func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Write marshals all hotels and overwrites the output file. There is no
// append mode: appending to a JSON array in place is not meaningful.
func (w *JSONWriter) Write(hotels []models.Hotel) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	data, err := json.MarshalIndent(hotels, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hotels: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("could not write file: %w", err)
	}

	utils.Success("Saved %d hotels → %s", len(hotels), w.path)
	return nil
}
