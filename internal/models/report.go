package models

import "time"

// PatientReport represents an uploaded medical report for a patient
type PatientReport struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  uint      `gorm:"not null;index" json:"patient_id"`
	ReportType string    `gorm:"size:100;not null" json:"report_type"`
	ReportURL  string    `gorm:"size:512;not null" json:"report_url"`
	ObjectID   string    `gorm:"size:100" json:"-"` // storage key, kept for deletion
	UploadedBy string    `gorm:"size:255" json:"uploaded_by,omitempty"`
	UploadedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"uploaded_at"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for PatientReport model
func (PatientReport) TableName() string {
	return "patient_reports"
}
