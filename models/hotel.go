package models

// Unavailable is the placeholder stored in any field whose marker could not
// be located in the page markup. Fields are never left empty or omitted.
const Unavailable = "N/A"

// Hotel is one search-result entry. All fields are kept as raw trimmed
// text: price and review formats vary by locale and currency, so nothing
// is parsed into numbers here.
type Hotel struct {
	Name        string `json:"hotel_name"`
	Location    string `json:"location"`
	ReviewScore string `json:"review_score"`
	ReviewCount string `json:"review_count"`
	Price       string `json:"price"`
}
