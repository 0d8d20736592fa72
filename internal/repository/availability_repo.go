package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create creates a new availability slot
func (r *AvailabilityRepository) Create(slot *models.DoctorAvailability) error {
	return r.db.Create(slot).Error
}

// FindByID retrieves a slot by ID
func (r *AvailabilityRepository) FindByID(id uint) (*models.DoctorAvailability, error) {
	var slot models.DoctorAvailability
	if err := r.db.First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// FindFreeByDoctorAndDate retrieves all unbooked slots for a doctor on a date
func (r *AvailabilityRepository) FindFreeByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	var slots []models.DoctorAvailability
	err := r.db.Where("doctor_id = ? AND available_date = ? AND is_booked = ?", doctorID, date, false).
		Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

// FindAllByDoctorAndDate retrieves every slot, booked or free, for a doctor on a date
func (r *AvailabilityRepository) FindAllByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	var slots []models.DoctorAvailability
	err := r.db.Where("doctor_id = ? AND available_date = ?", doctorID, date).
		Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

// Save persists changes to an existing slot
func (r *AvailabilityRepository) Save(slot *models.DoctorAvailability) error {
	return r.db.Save(slot).Error
}

// Delete removes a slot. The slot row is locked and re-read inside the
// transaction so a booking that lands concurrently cannot be orphaned:
// a booked slot is never deleted (ErrSlotInUse).
func (r *AvailabilityRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var slot models.DoctorAvailability
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, id).Error; err != nil {
			return err
		}
		if slot.IsBooked {
			return ErrSlotInUse
		}
		return tx.Delete(&models.DoctorAvailability{}, id).Error
	})
}
