package models

import "time"

// DoctorAvailability represents one bookable time window for one doctor on
// one date. Date is stored with day precision and the times as local
// wall-clock "HH:MM" strings; no timezone conversion is applied.
type DoctorAvailability struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;column:available_date" json:"available_date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	IsBooked  bool      `gorm:"not null;default:false" json:"is_booked"`

	// Back-link to the appointment occupying this slot. Plain column, no FK
	// constraint: the appointment side already references the slot and a
	// second constraint would make the cycle un-migratable.
	AppointmentID *uint `gorm:"index" json:"appointment_id,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for DoctorAvailability model
func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}
