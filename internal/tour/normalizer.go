package tour

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Normalize maps one raw upstream tour object into the canonical model.
// It never fails; any field it cannot resolve takes its default so a single
// malformed record cannot blank a listing page.
func Normalize(raw map[string]any) Tour {
	title := catalog.PickString(raw, "title", "name", "tourname", "tour_name")

	t := Tour{
		ID:            catalog.PickString(raw, "id", "_id", "tourid", "tour_id"),
		Title:         title,
		Destination:   destinationLabel(raw),
		Duration:      catalog.PickString(raw, "duration", "durationdays", "duration_days"),
		GroupSize:     catalog.PickString(raw, "groupsize", "group_size", "groupSize", "maxgroupsize"),
		Price:         catalog.PickFloat(raw, "price", "cost", "price_per_person", "priceperperson"),
		OriginalPrice: catalog.PickFloat(raw, "originalprice", "original_price", "oldprice", "old_price"),
		Difficulty:    catalog.PickStringDefault(raw, "Easy", "difficulty", "difficulty_level"),
		Category:      catalog.PickString(raw, "category", "type", "tourtype", "tour_type"),

		Highlights: catalog.PickList(raw, "highlights", "tour_highlights"),
		Included:   catalog.PickList(raw, "included", "includes", "inclusions", "whatsincluded"),
		Excluded:   catalog.PickList(raw, "excluded", "excludes", "exclusions", "notincluded"),
		Itinerary:  itineraryDays(raw),
		Reviews:    reviews(raw),
		Popularity: catalog.PickInt(raw, "bookings", "bookings_count", "reviews_count", "reviewcount"),
	}

	t.Slug = catalog.PickString(raw, "slug")
	if t.Slug == "" {
		if t.ID != "" {
			t.Slug = t.ID
		} else {
			t.Slug = slug.Make(title)
		}
	}

	if r := catalog.Pick(raw, "rating", "avg_rating", "averagerating"); r != nil {
		val := catalog.ParsePrice(r)
		t.Rating = &val
	}

	primary := catalog.PickString(raw, "mainimage", "mainImage", "main_image", "image", "coverimage", "cover_image")
	t.Gallery = catalog.CollectImages(primary, catalog.PickList(raw, "gallery", "images", "galleryimages", "gallery_images"))
	t.MainImage = t.Gallery[0]

	return t
}

// NormalizeAll maps a raw list, dropping nothing.
func NormalizeAll(raws []map[string]any) []Tour {
	out := make([]Tour, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// destinationLabel joins possibly-multiple destination records into one label.
func destinationLabel(raw map[string]any) string {
	if s := catalog.PickString(raw, "destination", "location", "country"); s != "" {
		return s
	}

	var names []string
	for _, item := range catalog.PickSlice(raw, "destinations", "locations") {
		switch d := item.(type) {
		case string:
			if t := strings.TrimSpace(d); t != "" {
				names = append(names, t)
			}
		case map[string]any:
			if n := catalog.PickString(d, "name", "title", "city"); n != "" {
				names = append(names, n)
			}
		}
	}
	return strings.Join(names, ", ")
}

func itineraryDays(raw map[string]any) []ItineraryDay {
	items := catalog.PickSlice(raw, "itinerary", "itinerarydays", "itinerary_days", "days")
	out := make([]ItineraryDay, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		day := catalog.PickInt(m, "day", "daynumber", "day_number")
		if day == 0 {
			day = i + 1
		}
		out = append(out, ItineraryDay{
			Day:         day,
			Title:       catalog.PickString(m, "title", "name"),
			Description: catalog.PickString(m, "description", "details"),
			Activities:  catalog.PickList(m, "activities"),
			Meals:       catalog.PickString(m, "meals"),
			Lodging:     catalog.PickString(m, "accommodation", "lodging", "hotel"),
		})
	}
	return out
}

func reviews(raw map[string]any) []Review {
	items := catalog.PickSlice(raw, "reviews", "testimonials")
	out := make([]Review, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Review{
			Author:  catalog.PickString(m, "author", "name", "user", "username"),
			Rating:  catalog.PickFloat(m, "rating", "stars"),
			Comment: catalog.PickString(m, "comment", "text", "review", "message"),
			Date:    catalog.PickString(m, "date", "created_at", "createdat"),
		})
	}
	return out
}
