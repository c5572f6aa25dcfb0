package destination

// Destination feeds the navigation menu's featured-destination thumbnails.
type Destination struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}
