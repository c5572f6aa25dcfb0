package auditlog

import (
	"time"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"size:30;index" json:"reference"` // booking reference or draft id
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	Details   string    `gorm:"type:jsonb" json:"details"` // freeform JSON details
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Status    string    `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName overrides table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogFilter represents filters for querying audit logs
type AuditLogFilter struct {
	Reference string     `form:"reference" json:"reference"`
	Action    string     `form:"action" json:"action"`
	Status    string     `form:"status" json:"status"`
	FromDate  *time.Time `form:"from_date" json:"from_date" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"to_date" json:"to_date" time_format:"2006-01-02"`
	Page      int        `form:"page" json:"page"`
	Limit     int        `form:"limit" json:"limit"`
}
