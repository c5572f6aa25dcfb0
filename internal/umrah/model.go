package umrah

// ======================
// 🔹 Canonical Umrah Package Model
// ======================

// PackageType drives the visual theme and star count on package cards.
type PackageType string

const (
	TypeEconomy   PackageType = "economy"
	TypePremium   PackageType = "premium"
	TypeExecutive PackageType = "executive"
)

// Stars returns the star count shown for a package tier.
func (t PackageType) Stars() int {
	switch t {
	case TypeExecutive:
		return 5
	case TypePremium:
		return 4
	default:
		return 3
	}
}

type Package struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        PackageType `json:"type"`
	Stars       int         `json:"stars"`

	// Nights is reconciled from the two duration fields the upstream uses.
	Nights   int     `json:"nights"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	Included []string       `json:"included"`
	Hotels   []PackageHotel `json:"hotels"`

	GroupSize string `json:"group_size"`
	Status    string `json:"status"`

	MainImage string   `json:"main_image"`
	Gallery   []string `json:"gallery"`

	Popularity int `json:"popularity"`
}

type PackageHotel struct {
	City   string `json:"city"`
	Nights int    `json:"nights"`
	Stars  int    `json:"stars"`
	Name   string `json:"name"`
}

type Facets struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Duration string `form:"duration"`
	SortBy   string `form:"sort_by"`
}
