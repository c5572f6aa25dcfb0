package tour

// ======================
// 🔹 Canonical Tour Model
// ======================
//
// Derived fresh from the upstream payload on every fetch; no field is ever
// left unset, so render and booking code never re-implement fallback logic.

type Tour struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Destination   string   `json:"destination"`
	Duration      string   `json:"duration"`
	GroupSize     string   `json:"group_size"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Rating        *float64 `json:"rating"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`

	Highlights []string       `json:"highlights"`
	Included   []string       `json:"included"`
	Excluded   []string       `json:"excluded"`
	Itinerary  []ItineraryDay `json:"itinerary"`

	MainImage string   `json:"main_image"`
	Gallery   []string `json:"gallery"`

	Reviews []Review `json:"reviews"`

	// Booking/review volume used by the default "popularity" sort, 0 when the
	// upstream omits it.
	Popularity int `json:"popularity"`
}

type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Meals       string   `json:"meals"`
	Lodging     string   `json:"accommodation"`
}

type Review struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// ======================
// 🔹 Listing Facets
// ======================

type Facets struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	Destination string `form:"destination"`
	PriceRange  string `form:"price_range"`
	Duration    string `form:"duration"`
	SortBy      string `form:"sort_by"`
}
