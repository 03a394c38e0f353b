package booking

// CSS selectors for Booking.com search-result markup.
//
// The class signatures are the exact generated class names from the
// rendered page. They are the fragile part of this scraper: a site
// redesign renames them silently, and extraction degrades to sentinel
// values with no fallback heuristic.
const (
	// Each search result is one card with this role.
	ListingSelector = `div[role="listitem"]`

	NameSelector        = "div.b87c397a13.a3e0b4ffd1"
	LocationSelector    = "div.d823fbbeed.f9b3563dd4"
	ReviewScoreSelector = "div.f63b14ab7a.f546354b44.becbee2f63"
	ReviewCountSelector = "div.fff1944c52.fb14de7f14.eaa8455879"
	PriceSelector       = "span.b87c397a13.f2f358d1de.ab607752a2"
)
