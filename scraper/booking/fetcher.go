package booking

import (
	"bytes"
	"context"
	"fmt"

	"booking-scraper/config"
	"booking-scraper/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Fetcher issues the single search-page request.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher(cfg *config.Config) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeaders(utils.BrowserHeaders())
	return &Fetcher{client: client}
}

// FetchPage performs one GET and parses the body into a queryable
// document. Transport errors, timeouts and non-2xx statuses all come back
// as errors; there is no retry. Callers treat a failed fetch as zero
// listings.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (*goquery.Document, error) {
	utils.Info("Fetching: %s", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode(), url)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	utils.Success("Fetched page (status %d, %d bytes)", resp.StatusCode(), len(resp.Body()))
	return doc, nil
}
