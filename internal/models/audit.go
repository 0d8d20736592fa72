package models

import "time"

// AuditLog records booking activity and administrative overrides.
// StaffID is nil for actions performed through the public booking API.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StaffID   *uint     `gorm:"index" json:"staff_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Staff *StaffUser `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
