package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"booking-scraper/config"
	"booking-scraper/models"
	"booking-scraper/utils"
)

// CSV columns, in output order.
var csvHeader = []string{"Hotel Name", "Location", "Review Score", "Number of Reviews", "Price"}

// CSVWriter saves hotels to a CSV file.
type CSVWriter struct {
	path string
	mode config.WriteMode
}

func NewCSVWriter(path string, mode config.WriteMode) *CSVWriter {
	return &CSVWriter{path: path, mode: mode}
}

// Write saves all hotels to the CSV file, header first, one row per hotel
// in input order. Overwrite mode truncates the file so re-runs are
// idempotent; append mode grows it and writes the header again each run.
// Creates the output directory if it does not exist.
func (w *CSVWriter) Write(hotels []models.Hotel) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := w.open()
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	// csv.NewWriter handles quoting, commas inside fields, line endings
	writer := csv.NewWriter(file)

	writer.Write(csvHeader)
	for _, h := range hotels {
		writer.Write([]string{
			h.Name,
			h.Location,
			h.ReviewScore,
			h.ReviewCount,
			h.Price,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	utils.Success("Saved %d hotels → %s", len(hotels), w.path)
	return nil
}

func (w *CSVWriter) open() (*os.File, error) {
	if w.mode == config.ModeAppend {
		return os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	return os.Create(w.path)
}
