package auditlog

import (
	"context"
	"encoding/json"
	"log"
)

type Service interface {
	// LogAction records one action against a booking reference or draft id.
	// Logging must never fail the calling flow; errors are swallowed after a
	// log line.
	LogAction(ctx context.Context, reference, action string, details map[string]interface{}, ip, status string)
	GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, reference, action string, details map[string]interface{}, ip, status string) {
	payload := "{}"
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			payload = string(b)
		}
	}

	entry := &AuditLog{
		Reference: reference,
		Action:    action,
		Details:   payload,
		IPAddress: ip,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to write audit log (%s): %v", action, err)
	}
}

func (s *service) GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error) {
	return s.repo.GetByFilter(ctx, filter)
}
