package booking

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	Search(ctx context.Context, filter BookingFilter) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Search lists submitted bookings for the back office with filtering and
// pagination.
func (r *repository) Search(ctx context.Context, filter BookingFilter) ([]Booking, int64, error) {
	var bookings []Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}
	if filter.Search != "" {
		ilike := "%" + filter.Search + "%"
		query = query.Where(
			"reference ILIKE ? OR item_title ILIKE ? OR email ILIKE ? OR last_name ILIKE ?",
			ilike, ilike, ilike, ilike,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
