package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"booking-scraper/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// fieldOrder matches the CSV column order.
var fieldOrder = []string{"Hotel Name", "Location", "Review Score", "Number of Reviews", "Price"}

// Summary aggregates counts only. Prices and scores stay raw strings, so
// there are no numeric statistics here.
type Summary struct {
	TotalHotels       int
	HotelsByLocation  map[string]int
	FieldAvailability map[string]int
}

func BuildSummary(hotels []models.Hotel) Summary {
	s := Summary{
		TotalHotels:       len(hotels),
		HotelsByLocation:  make(map[string]int),
		FieldAvailability: make(map[string]int),
	}

	for _, h := range hotels {
		s.HotelsByLocation[normalizeLocation(h.Location)]++

		markAvailable(s.FieldAvailability, "Hotel Name", h.Name)
		markAvailable(s.FieldAvailability, "Location", h.Location)
		markAvailable(s.FieldAvailability, "Review Score", h.ReviewScore)
		markAvailable(s.FieldAvailability, "Number of Reviews", h.ReviewCount)
		markAvailable(s.FieldAvailability, "Price", h.Price)
	}

	return s
}

func PrintSummary(s Summary) {
	fmt.Println()

	total := table.NewWriter()
	total.SetOutputMirror(os.Stdout)
	total.SetTitle("Scrape Complete")
	total.AppendRow(table.Row{"Total hotels", s.TotalHotels})
	total.Render()

	locations := table.NewWriter()
	locations.SetOutputMirror(os.Stdout)
	locations.AppendHeader(table.Row{"Location", "Hotels"})
	for _, loc := range sortedLocations(s.HotelsByLocation) {
		locations.AppendRow(table.Row{loc, s.HotelsByLocation[loc]})
	}
	locations.Render()

	fields := table.NewWriter()
	fields.SetOutputMirror(os.Stdout)
	fields.AppendHeader(table.Row{"Field", "Available"})
	for _, field := range fieldOrder {
		fields.AppendRow(table.Row{field, fmt.Sprintf("%d/%d", s.FieldAvailability[field], s.TotalHotels)})
	}
	fields.Render()

	fmt.Println()
}

func markAvailable(counts map[string]int, field, value string) {
	if strings.TrimSpace(value) != "" && value != models.Unavailable {
		counts[field]++
	}
}

func normalizeLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" || location == models.Unavailable {
		return "Unknown"
	}
	return location
}

func sortedLocations(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
