package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sharath018/travel-agency-backend/internal/auditlog"
	"github.com/sharath018/travel-agency-backend/utils"
)

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	// ErrItemLocked: a pre-bound draft keeps the item it was created with.
	ErrItemLocked       = errors.New("item cannot be changed on this draft")
	ErrInvalidPartySize = errors.New("party size fields must not be negative")
)

// IncompleteDraftError carries the unmet requirements of a failed submit so
// the handler can return them to the client.
type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return "draft is incomplete: missing " + strings.Join(e.Missing, ", ")
}

// Service drives the booking wizard end to end: draft lifecycle, step
// transitions, pricing, and final submission.
type Service struct {
	Drafts   DraftStore
	Repo     Repository
	Resolver ItemResolver
	Audit    auditlog.Service

	// Overridable side effects so tests can run without Kafka or SMTP.
	Publish func(ctx context.Context, key string, payload []byte) error
	Notify  func(toEmail, firstName, reference, itemTitle string, total float64, currency string)
}

func NewService(drafts DraftStore, repo Repository, resolver ItemResolver, audit auditlog.Service) *Service {
	return &Service{
		Drafts:   drafts,
		Repo:     repo,
		Resolver: resolver,
		Audit:    audit,
		Publish:  utils.PublishBookingEvent,
		Notify:   utils.SendBookingConfirmationEmail,
	}
}

// ======================
// 🔹 Draft Lifecycle
// ======================

// CreateDraft opens a new wizard dialog. When a slug is supplied the item is
// bound immediately and the draft starts at trip details; otherwise it starts
// at service selection.
func (s *Service) CreateDraft(ctx context.Context, req CreateDraftRequest, ip string) (*Draft, error) {
	d := &Draft{
		ID:        uuid.New().String(),
		Adults:    1,
		CreatedAt: time.Now(),
	}

	if req.ServiceType != "" {
		st := ServiceType(req.ServiceType)
		if !st.Valid() {
			return nil, ErrInvalidServiceType
		}
		d.ServiceType = st
	}

	if req.Slug != "" {
		if !d.ServiceType.Valid() {
			return nil, ErrInvalidServiceType
		}
		item, err := s.Resolver.Resolve(ctx, d.ServiceType, req.Slug)
		if err != nil {
			return nil, err
		}
		d.Item = item
		d.PreBound = true
	}

	d.Step = d.FirstStep()

	if err := s.Drafts.Save(ctx, d); err != nil {
		return nil, err
	}

	s.Audit.LogAction(ctx, d.ID, "DRAFT_CREATED", map[string]interface{}{
		"service_type": string(d.ServiceType),
		"pre_bound":    d.PreBound,
	}, ip, "success")

	return d, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (*Draft, error) {
	return s.Drafts.Get(ctx, id)
}

// UpdateDraft applies a partial update to the draft's fields. Step position
// is never changed here; that is what Advance and Regress are for.
func (s *Service) UpdateDraft(ctx context.Context, id string, req UpdateDraftRequest) (*Draft, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ServiceType != nil {
		if d.PreBound {
			return nil, ErrItemLocked
		}
		st := ServiceType(*req.ServiceType)
		if !st.Valid() {
			return nil, ErrInvalidServiceType
		}
		if st != d.ServiceType {
			d.ServiceType = st
			// A service switch invalidates any previously bound item.
			d.Item = nil
		}
	}

	if req.Slug != nil {
		if d.PreBound {
			return nil, ErrItemLocked
		}
		if !d.ServiceType.Valid() {
			return nil, ErrInvalidServiceType
		}
		item, err := s.Resolver.Resolve(ctx, d.ServiceType, *req.Slug)
		if err != nil {
			return nil, err
		}
		d.Item = item
	}

	if req.Adults != nil {
		if *req.Adults < 1 {
			return nil, ErrInvalidPartySize
		}
		d.Adults = *req.Adults
	}
	if req.Children != nil {
		if *req.Children < 0 {
			return nil, ErrInvalidPartySize
		}
		d.Children = *req.Children
	}
	if req.Rooms != nil {
		if *req.Rooms < 0 {
			return nil, ErrInvalidPartySize
		}
		d.Rooms = *req.Rooms
	}

	if req.StartDate != nil {
		d.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		d.EndDate = *req.EndDate
	}
	if req.Tier != nil {
		d.Tier = *req.Tier
	}
	if req.SpecialRequest != nil {
		d.SpecialRequest = *req.SpecialRequest
	}
	if req.FirstName != nil {
		d.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		d.LastName = *req.LastName
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}

	if err := s.Drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Advance(ctx context.Context, id string) (*Draft, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Advance(); err != nil {
		return nil, err
	}
	if err := s.Drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Regress(ctx context.Context, id string) (*Draft, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Regress(); err != nil {
		return nil, err
	}
	if err := s.Drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Summary builds the confirmation view with the provisional total.
func (s *Service) Summary(ctx context.Context, id string) (*Summary, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Draft:         d,
		Nights:        d.Nights(),
		Total:         d.Total(),
		MissingFields: d.MissingForSubmit(),
	}
	if d.Item != nil {
		summary.UnitPrice = d.Item.UnitPrice
		summary.Currency = d.Item.Currency
	}
	return summary, nil
}

func (s *Service) DiscardDraft(ctx context.Context, id string) error {
	return s.Drafts.Delete(ctx, id)
}

// ======================
// 🔹 Submission
// ======================

// Submit validates the full draft, persists the booking, and kicks off the
// downstream side effects. The draft is deleted once the booking is durable;
// event and email failures never roll the booking back.
func (s *Service) Submit(ctx context.Context, id, ip string) (*Booking, error) {
	d, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if missing := d.MissingForSubmit(); len(missing) > 0 {
		s.Audit.LogAction(ctx, d.ID, "BOOKING_REJECTED", map[string]interface{}{
			"missing_fields": missing,
		}, ip, "failed")
		return nil, &IncompleteDraftError{Missing: missing}
	}

	snapshot, err := json.Marshal(d.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item snapshot: %w", err)
	}

	b := &Booking{
		Reference:      newReference(),
		ServiceType:    string(d.ServiceType),
		ItemSlug:       d.Item.Slug,
		ItemTitle:      d.Item.Title,
		ItemSnapshot:   snapshot,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Adults:         d.Adults,
		Children:       d.Children,
		Rooms:          d.Rooms,
		Tier:           d.Tier,
		SpecialRequest: d.SpecialRequest,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		Total:          d.Total(),
		Currency:       d.Item.Currency,
		Status:         "confirmed",
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.Audit.LogAction(ctx, b.Reference, "BOOKING_SUBMITTED", map[string]interface{}{
		"draft_id":     d.ID,
		"service_type": b.ServiceType,
		"item_slug":    b.ItemSlug,
		"total":        b.Total,
	}, ip, "success")

	if payload, err := json.Marshal(b); err == nil {
		if err := s.Publish(ctx, b.Reference, payload); err != nil {
			log.Printf("⚠️ Failed to publish booking event for %s: %v", b.Reference, err)
		}
	}

	s.Notify(b.Email, b.FirstName, b.Reference, b.ItemTitle, b.Total, b.Currency)

	if err := s.Drafts.Delete(ctx, d.ID); err != nil {
		log.Printf("⚠️ Failed to delete draft %s after submit: %v", d.ID, err)
	}

	return b, nil
}

// newReference mints a short human-quotable booking reference.
func newReference() string {
	return "TRV-" + strings.ToUpper(uuid.New().String()[:8])
}

// ======================
// 🔹 Back Office
// ======================

func (s *Service) GetBooking(ctx context.Context, reference string) (*Booking, error) {
	return s.Repo.GetByReference(ctx, reference)
}

func (s *Service) SearchBookings(ctx context.Context, filter BookingFilter) ([]Booking, int64, error) {
	return s.Repo.Search(ctx, filter)
}
