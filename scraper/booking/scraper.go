package booking

import (
	"context"
	"strings"

	"booking-scraper/config"
	"booking-scraper/models"
	"booking-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

type Scraper struct {
	cfg     *config.Config
	fetcher *Fetcher
}

func NewScraper(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg:     cfg,
		fetcher: NewFetcher(cfg),
	}
}

// ScrapeHotels fetches the search results page and extracts every hotel
// card. A failed fetch yields an empty slice rather than an error; the
// caller treats it as "no listings".
func (s *Scraper) ScrapeHotels(ctx context.Context, url string) []models.Hotel {
	doc, err := s.fetcher.FetchPage(ctx, url)
	if err != nil {
		utils.Error("Fetch failed: %v", err)
		return nil
	}
	return s.ExtractHotels(doc)
}

// ExtractHotels walks every listing card in document order. Output order
// equals card order on the page.
func (s *Scraper) ExtractHotels(doc *goquery.Document) []models.Hotel {
	cards := doc.Find(ListingSelector)
	utils.Info("Found %d potential hotel listings", cards.Length())

	var hotels []models.Hotel
	cards.Each(func(i int, card *goquery.Selection) {
		hotels = append(hotels, extractHotel(card))
	})

	utils.Success("Extracted %d hotels", len(hotels))
	return hotels
}

// extractHotel pulls the five fields out of one listing card. Each field
// is looked up independently, scoped to the card, and falls back to
// models.Unavailable when its marker is missing — one renamed class never
// drops the whole record.
func extractHotel(card *goquery.Selection) models.Hotel {
	return models.Hotel{
		Name:        fieldText(card, NameSelector),
		Location:    fieldText(card, LocationSelector),
		ReviewScore: fieldText(card, ReviewScoreSelector),
		ReviewCount: fieldText(card, ReviewCountSelector),
		Price:       fieldText(card, PriceSelector),
	}
}

func fieldText(card *goquery.Selection, selector string) string {
	text := strings.TrimSpace(card.Find(selector).First().Text())
	if text == "" {
		return models.Unavailable
	}
	return text
}
