package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalPerHeadWithChildDiscount(t *testing.T) {
	// 2 adults + 1 child at 70% of 1000 = 2700.
	total := ComputeTotal(1000, 2, 1, ServiceTour, 0, 0)
	assert.InDelta(t, 2700, total, 0.001)
}

func TestComputeTotalUmrahUsesChildDiscountToo(t *testing.T) {
	total := ComputeTotal(2000, 1, 2, ServiceUmrah, 0, 0)
	assert.InDelta(t, 2000+2*2000*0.7, total, 0.001)
}

func TestComputeTotalHotelRoomNights(t *testing.T) {
	total := ComputeTotal(150, 2, 0, ServiceHotel, 2, 3)
	assert.InDelta(t, 150*2*3, total, 0.001)
}

func TestComputeTotalHotelDefaultsWithoutDates(t *testing.T) {
	// No nights chosen yet: assume a week so the estimate is never blank.
	total := ComputeTotal(100, 1, 0, ServiceHotel, 1, 0)
	assert.InDelta(t, 100*DefaultNights, total, 0.001)

	// Zero rooms is treated as one room.
	total = ComputeTotal(100, 1, 0, ServiceHotel, 0, 2)
	assert.InDelta(t, 200, total, 0.001)
}

func TestComputeTotalZeroUnitPrice(t *testing.T) {
	assert.Zero(t, ComputeTotal(0, 5, 5, ServiceTour, 0, 0))
	assert.Zero(t, ComputeTotal(-100, 2, 0, ServiceHotel, 1, 3))
}

func TestComputeTotalNeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, ComputeTotal(500, -3, -2, ServiceTour, 0, 0), 0.0)
}

func TestComputeTotalMonotonicInPartySize(t *testing.T) {
	base := ComputeTotal(800, 1, 0, ServiceTour, 0, 0)
	moreAdults := ComputeTotal(800, 2, 0, ServiceTour, 0, 0)
	withChild := ComputeTotal(800, 1, 1, ServiceTour, 0, 0)

	assert.Greater(t, moreAdults, base)
	assert.Greater(t, withChild, base)
	// A child costs less than an adult.
	assert.Less(t, withChild, moreAdults)
}

func TestDraftNights(t *testing.T) {
	d := &Draft{StartDate: "2026-09-01", EndDate: "2026-09-05"}
	assert.Equal(t, 4, d.Nights())

	// Same-day stays still count one night.
	d = &Draft{StartDate: "2026-09-01", EndDate: "2026-09-01"}
	assert.Equal(t, 1, d.Nights())

	// Unparseable or missing dates yield zero so the default applies.
	d = &Draft{StartDate: "soon", EndDate: "later"}
	assert.Zero(t, d.Nights())
	d = &Draft{StartDate: "2026-09-01"}
	assert.Zero(t, d.Nights())
}

func TestDraftTotal(t *testing.T) {
	d := &Draft{
		ServiceType: ServiceHotel,
		Item:        &ItemSnapshot{UnitPrice: 120},
		Rooms:       1,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
	}
	assert.InDelta(t, 240, d.Total(), 0.001)

	// No bound item means nothing to price yet.
	assert.Zero(t, (&Draft{ServiceType: ServiceTour}).Total())
}
