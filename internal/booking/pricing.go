package booking

import "time"

// ======================
// 🔹 Price Calculator
// ======================

// Business rules carried over as-is from the product side. Do not tune these
// without product confirmation.
const (
	// Children are billed at 70% of the adult rate on tours and packages.
	ChildRateMultiplier = 0.7

	// Assumed stay length for lodging when no date range has been chosen.
	DefaultNights = 7
)

// ComputeTotal derives the provisional total shown on the confirmation step.
// Lodging is priced per room-night; tours and packages per head with the
// child discount. The result is never negative and a zero unit price yields
// zero regardless of party size.
func ComputeTotal(unitPrice float64, adults, children int, service ServiceType, rooms, nights int) float64 {
	if unitPrice <= 0 {
		return 0
	}
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}

	if service == ServiceHotel {
		if rooms < 1 {
			rooms = 1
		}
		if nights < 1 {
			nights = DefaultNights
		}
		return unitPrice * float64(rooms) * float64(nights)
	}

	return unitPrice * (float64(adults) + float64(children)*ChildRateMultiplier)
}

// Nights derives the stay length from the draft's date range. Zero means no
// usable range, which lets the lodging default apply.
func (d *Draft) Nights() int {
	start, err := time.Parse("2006-01-02", d.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", d.EndDate)
	if err != nil {
		return 0
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Total prices the draft against its bound item.
func (d *Draft) Total() float64 {
	if d.Item == nil {
		return 0
	}
	return ComputeTotal(d.Item.UnitPrice, d.Adults, d.Children, d.ServiceType, d.Rooms, d.Nights())
}
