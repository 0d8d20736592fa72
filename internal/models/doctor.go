package models

import "time"

// Doctor represents a doctor attached to a hospital and a department.
// The department must belong to the same hospital as the doctor.
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HospitalID     uint      `gorm:"not null;index" json:"hospital_id"`
	DepartmentID   uint      `gorm:"not null;index" json:"department_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Contact        string    `gorm:"size:100" json:"contact,omitempty"`
	Specialization string    `gorm:"size:100" json:"specialization,omitempty"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Hospital   Hospital   `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`

	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments   []Appointment        `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
