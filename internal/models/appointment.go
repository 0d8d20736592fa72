package models

import "time"

// Appointment represents a booked consultation. It references exactly one
// availability slot; the unique index on SlotID guarantees a slot is never
// linked to more than one appointment even if the booked flag is raced.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AppointmentTime time.Time `gorm:"not null" json:"appointment_time"`
	Reason          string    `gorm:"type:text" json:"reason,omitempty"`

	PatientID    uint `gorm:"not null;index" json:"patient_id"`
	DepartmentID uint `gorm:"not null;index" json:"department_id"`
	DoctorID     uint `gorm:"not null;index" json:"doctor_id"`
	SlotID       uint `gorm:"not null;uniqueIndex;column:available_slot_id" json:"available_slot_id"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Patient    Patient            `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Department Department         `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Doctor     Doctor             `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Slot       DoctorAvailability `gorm:"foreignKey:SlotID" json:"-"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
