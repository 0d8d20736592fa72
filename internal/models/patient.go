package models

import "time"

// Patient represents a patient registered with a hospital
type Patient struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Phone      string    `gorm:"size:50" json:"phone,omitempty"`
	Gender     string    `gorm:"size:20" json:"gender,omitempty"`
	Age        int       `json:"age"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`

	Appointments []Appointment   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Reports      []PatientReport `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
