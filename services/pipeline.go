package services

import (
	"context"
	"fmt"

	"booking-scraper/config"
	"booking-scraper/models"
	"booking-scraper/scraper/booking"
	"booking-scraper/storage"
	"booking-scraper/utils"
)

// Pipeline wires fetch → extract → write in sequence. Strictly linear, one
// request, no retry loop.
type Pipeline struct {
	cfg     *config.Config
	scraper *booking.Scraper
}

func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		scraper: booking.NewScraper(cfg),
	}
}

// Execute runs the complete scrape and returns the number of hotels
// written. Zero hotels (failed fetch or no listing markers on the page)
// skips every writer and is not an error; any write failure is.
func (p *Pipeline) Execute(ctx context.Context, url string) (int, error) {
	hotels := p.scraper.ScrapeHotels(ctx, url)
	if len(hotels) == 0 {
		utils.Warn("No hotels found or scraped")
		return 0, nil
	}

	if err := p.writeFiles(hotels); err != nil {
		return 0, err
	}

	if p.cfg.SaveDB {
		if err := p.saveToDatabase(ctx, hotels); err != nil {
			return 0, fmt.Errorf("database save failed: %w", err)
		}
	}

	PrintSummary(BuildSummary(hotels))
	return len(hotels), nil
}

func (p *Pipeline) writeFiles(hotels []models.Hotel) error {
	if p.cfg.Format == config.FormatCSV || p.cfg.Format == config.FormatBoth {
		writer := storage.NewCSVWriter(p.cfg.CSVPath(), p.cfg.WriteMode)
		if err := writer.Write(hotels); err != nil {
			return fmt.Errorf("CSV save failed: %w", err)
		}
		fmt.Printf("CSV data saved to: %s\n", p.cfg.CSVPath())
	}

	if p.cfg.Format == config.FormatJSON || p.cfg.Format == config.FormatBoth {
		writer := storage.NewJSONWriter(p.cfg.JSONPath())
		if err := writer.Write(hotels); err != nil {
			return fmt.Errorf("JSON save failed: %w", err)
		}
		fmt.Printf("JSON data saved to: %s\n", p.cfg.JSONPath())
	}

	return nil
}

func (p *Pipeline) saveToDatabase(ctx context.Context, hotels []models.Hotel) error {
	pgWriter, err := storage.NewPostgresWriter(ctx, p.cfg)
	if err != nil {
		return err
	}
	defer pgWriter.Close()

	if err := pgWriter.EnsureSchema(ctx); err != nil {
		return err
	}

	if err := pgWriter.WriteBatch(ctx, hotels); err != nil {
		return err
	}

	utils.Success("Saved %d hotels to PostgreSQL", len(hotels))
	return nil
}
