package hotel

// ======================
// 🔹 Canonical Hotel Model
// ======================

type Hotel struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`

	RoomCount int     `json:"room_count"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	Currency  string  `json:"currency"`

	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`

	MainImage string   `json:"main_image"`
	Gallery   []string `json:"gallery"`

	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`

	CancellationPolicy string `json:"cancellation_policy"`
	AdditionalPolicy   string `json:"additional_policy"`

	Popularity int `json:"popularity"`
}

// Front-desk defaults substituted when the upstream omits the times.
const (
	DefaultCheckIn  = "15:00"
	DefaultCheckOut = "11:00"
)

type Facets struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Country    string `form:"country"`
	PriceRange string `form:"price_range"`
	SortBy     string `form:"sort_by"`
}
