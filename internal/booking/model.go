package booking

import (
	"time"

	"gorm.io/datatypes"
)

// ======================
// 🔹 Service Types
// ======================

type ServiceType string

const (
	ServiceTour  ServiceType = "tour"
	ServiceHotel ServiceType = "hotel"
	ServiceUmrah ServiceType = "umrah"
)

func (s ServiceType) Valid() bool {
	return s == ServiceTour || s == ServiceHotel || s == ServiceUmrah
}

// ======================
// 🔹 Wizard Steps
// ======================

type Step int

const (
	StepServiceSelect Step = iota
	StepItemSelect
	StepTripDetails
	StepTravelers
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepServiceSelect:
		return "service_select"
	case StepItemSelect:
		return "item_select"
	case StepTripDetails:
		return "trip_details"
	case StepTravelers:
		return "travelers"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// ======================
// 🔹 Booking Draft
// ======================

// ItemSnapshot is the bound canonical record, read-only for the draft's life.
type ItemSnapshot struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
	Image     string  `json:"image"`
}

// Draft is the transient wizard state. It lives in Redis for the duration of
// the booking dialog and is discarded on close or successful submission.
type Draft struct {
	ID          string       `json:"id"`
	ServiceType ServiceType  `json:"service_type"`
	Item        *ItemSnapshot `json:"item,omitempty"`

	// PreBound drafts were created from a detail page with the item already
	// chosen; the first two steps are skipped entirely.
	PreBound bool `json:"pre_bound"`

	Step Step `json:"step"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`

	Tier           string `json:"tier"`
	SpecialRequest string `json:"special_request"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}

// ======================
// 🔹 Submitted Booking (GORM)
// ======================

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"type:varchar(20);uniqueIndex;not null" json:"reference"`

	ServiceType string `gorm:"type:varchar(10);not null;index" json:"service_type"`
	ItemSlug    string `gorm:"type:varchar(255);index" json:"item_slug"`
	ItemTitle   string `gorm:"type:varchar(255)" json:"item_title"`

	// Canonical record as bound at submission time; the catalog is re-fetched
	// on every page view, so this is the only durable copy.
	ItemSnapshot datatypes.JSON `gorm:"type:jsonb" json:"item_snapshot"`

	StartDate string `gorm:"type:varchar(20)" json:"start_date"`
	EndDate   string `gorm:"type:varchar(20)" json:"end_date"`

	Adults   int `gorm:"not null" json:"adults"`
	Children int `gorm:"not null;default:0" json:"children"`
	Rooms    int `gorm:"not null;default:0" json:"rooms"`

	Tier           string `gorm:"type:varchar(50)" json:"tier"`
	SpecialRequest string `gorm:"type:text" json:"special_request"`

	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`

	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	Currency string  `gorm:"type:varchar(10);not null" json:"currency"`

	Status string `gorm:"type:varchar(20);default:'confirmed'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ✅ For Filtered Search (Back Office)
type BookingFilter struct {
	Status      string `form:"status"`
	ServiceType string `form:"service_type"`
	Search      string `form:"search"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

// ======================
// 🔹 Requests & Views
// ======================

type CreateDraftRequest struct {
	ServiceType string `json:"service_type"`
	Slug        string `json:"slug"`
}

// UpdateDraftRequest carries partial field updates; nil pointers leave a
// field untouched.
type UpdateDraftRequest struct {
	ServiceType *string `json:"service_type"`
	Slug        *string `json:"slug"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`

	Adults   *int `json:"adults"`
	Children *int `json:"children"`
	Rooms    *int `json:"rooms"`

	Tier           *string `json:"tier"`
	SpecialRequest *string `json:"special_request"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Summary is the read-only confirmation view with the provisional price.
type Summary struct {
	Draft         *Draft   `json:"draft"`
	Nights        int      `json:"nights"`
	UnitPrice     float64  `json:"unit_price"`
	Total         float64  `json:"total"`
	Currency      string   `json:"currency"`
	MissingFields []string `json:"missing_fields"`
}
