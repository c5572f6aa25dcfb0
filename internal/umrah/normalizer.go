package umrah

import (
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Normalize maps one raw upstream Umrah package into the canonical model.
// Total by contract.
func Normalize(raw map[string]any) Package {
	name := catalog.PickString(raw, "name", "title", "packagename", "package_name")

	p := Package{
		ID:          catalog.PickString(raw, "id", "_id", "packageid", "package_id"),
		Name:        name,
		Description: catalog.PickString(raw, "description", "details", "about"),
		Type:        packageType(catalog.PickString(raw, "type", "packagetype", "package_type", "tier", "category")),
		Price:       catalog.PickFloat(raw, "price", "cost", "price_per_person", "priceperperson"),
		Currency:    catalog.PickStringDefault(raw, "USD", "currency", "currencycode", "currency_code"),
		Included:    catalog.PickList(raw, "included", "includes", "inclusions", "services"),
		Hotels:      packageHotels(raw),
		GroupSize:   catalog.PickString(raw, "groupsize", "group_size", "groupSize"),
		Status:      catalog.PickStringDefault(raw, "available", "status", "availability"),
		Popularity:  catalog.PickInt(raw, "bookings", "bookings_count", "reviews_count"),
	}
	p.Stars = p.Type.Stars()

	p.Slug = catalog.PickString(raw, "slug")
	if p.Slug == "" {
		if p.ID != "" {
			p.Slug = p.ID
		} else {
			p.Slug = slug.Make(name)
		}
	}

	// Two source fields may carry the duration: a nights count or a free-text
	// duration label ("10 Days / 9 Nights"). The explicit count wins.
	p.Nights = catalog.PickInt(raw, "nights", "numnights", "num_nights")
	if p.Nights == 0 {
		p.Nights = catalog.FirstInt(catalog.PickString(raw, "duration", "durationdays", "duration_days"))
	}

	primary := catalog.PickString(raw, "mainimage", "mainImage", "main_image", "image", "coverimage", "cover_image")
	p.Gallery = catalog.CollectImages(primary, catalog.PickList(raw, "gallery", "images"))
	p.MainImage = p.Gallery[0]

	return p
}

func NormalizeAll(raws []map[string]any) []Package {
	out := make([]Package, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// packageType folds arbitrary tier strings onto the fixed enum, defaulting
// to economy.
func packageType(s string) PackageType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "executive", "vip", "luxury":
		return TypeExecutive
	case "premium", "deluxe":
		return TypePremium
	default:
		return TypeEconomy
	}
}

func packageHotels(raw map[string]any) []PackageHotel {
	items := catalog.PickSlice(raw, "hotels", "accommodations", "accommodation")
	out := make([]PackageHotel, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		stars := catalog.PickInt(m, "stars", "starrating", "star_rating")
		if stars == 0 {
			stars = catalog.FirstInt(catalog.PickString(m, "category", "class"))
		}
		out = append(out, PackageHotel{
			City:   catalog.PickString(m, "city", "location"),
			Nights: catalog.PickInt(m, "nights", "numnights", "num_nights"),
			Stars:  stars,
			Name:   catalog.PickString(m, "name", "hotelname", "hotel_name"),
		})
	}
	return out
}

// NightsLabel renders the reconciled duration for cards ("9 nights").
func (p Package) NightsLabel() string {
	return strconv.Itoa(p.Nights) + " nights"
}
