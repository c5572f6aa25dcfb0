package hotel

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Normalize maps one raw upstream hotel object into the canonical model.
// Total by contract: every unresolvable field takes its default.
func Normalize(raw map[string]any) Hotel {
	name := catalog.PickString(raw, "name", "title", "hotelname", "hotel_name")

	h := Hotel{
		ID:       catalog.PickString(raw, "id", "_id", "hotelid", "hotel_id"),
		Name:     name,
		Location: catalog.PickString(raw, "location", "city", "address_city"),
		Category: catalog.PickString(raw, "category", "type", "hoteltype", "hotel_type"),
		Rating:   catalog.PickFloat(raw, "rating", "stars", "starrating", "star_rating"),

		RoomCount: catalog.PickInt(raw, "roomcount", "room_count", "rooms", "totalrooms", "total_rooms"),
		Currency:  catalog.PickStringDefault(raw, "USD", "currency", "currencycode", "currency_code"),

		Amenities:   dedupe(catalog.PickList(raw, "amenities", "facilities", "features")),
		Description: catalog.PickString(raw, "description", "about", "overview"),

		Address: catalog.PickString(raw, "address", "fulladdress", "full_address"),
		Phone:   catalog.PickString(raw, "phone", "phonenumber", "phone_number", "contact"),
		Email:   catalog.PickString(raw, "email", "contactemail", "contact_email"),

		CheckIn:  catalog.PickStringDefault(raw, DefaultCheckIn, "checkin", "check_in", "checkintime", "check_in_time"),
		CheckOut: catalog.PickStringDefault(raw, DefaultCheckOut, "checkout", "check_out", "checkouttime", "check_out_time"),

		CancellationPolicy: catalog.PickString(raw, "cancellationpolicy", "cancellation_policy", "cancellation"),
		AdditionalPolicy:   catalog.PickString(raw, "additionalpolicy", "additional_policy", "policies"),

		Popularity: catalog.PickInt(raw, "bookings", "bookings_count", "reviews_count", "reviewcount"),
	}

	h.Slug = catalog.PickString(raw, "slug")
	if h.Slug == "" {
		if h.ID != "" {
			h.Slug = h.ID
		} else {
			h.Slug = slug.Make(name)
		}
	}

	h.MinPrice = catalog.PickFloat(raw, "minprice", "min_price", "pricefrom", "price_from", "price")
	h.MaxPrice = catalog.PickFloat(raw, "maxprice", "max_price", "priceto", "price_to")
	if h.MaxPrice < h.MinPrice {
		if h.MaxPrice == 0 {
			h.MaxPrice = h.MinPrice
		} else {
			h.MinPrice, h.MaxPrice = h.MaxPrice, h.MinPrice
		}
	}

	primary := catalog.PickString(raw, "mainimage", "mainImage", "main_image", "image", "coverimage", "cover_image")
	h.Gallery = catalog.CollectImages(primary, catalog.PickList(raw, "gallery", "images", "galleryimages", "gallery_images"))
	h.MainImage = h.Gallery[0]

	return h
}

func NormalizeAll(raws []map[string]any) []Hotel {
	out := make([]Hotel, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// dedupe keeps first occurrences, case-insensitively, preserving order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
