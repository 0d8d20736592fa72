package models

import "time"

// Hospital represents a hospital/medical facility in the system
type Hospital struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Deleting a hospital removes everything it owns
	Departments []Department `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Doctors     []Doctor     `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Patients    []Patient    `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
