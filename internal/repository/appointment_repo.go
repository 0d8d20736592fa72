package repository

import (
	"errors"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Book atomically claims the slot referenced by appt and inserts the
// appointment. The slot row is locked FOR UPDATE and its booked flag
// re-checked inside the transaction, so at most one of N concurrent
// bookings for the same slot commits; the rest get ErrSlotTaken. The
// unique index on available_slot_id backstops the flag check: even a
// racing writer that slips past it fails on the insert.
func (r *AppointmentRepository) Book(appt *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var slot models.DoctorAvailability
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, appt.SlotID).Error; err != nil {
			return err
		}
		if slot.IsBooked {
			return ErrSlotTaken
		}

		if err := tx.Model(&models.DoctorAvailability{}).
			Where("id = ?", slot.ID).
			Update("is_booked", true).Error; err != nil {
			return err
		}

		if err := tx.Create(appt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}

		// Back-link the slot to the appointment it now carries
		return tx.Model(&models.DoctorAvailability{}).
			Where("id = ?", slot.ID).
			Update("appointment_id", appt.ID).Error
	})
}

// Cancel frees the linked slot and removes the appointment in one
// transaction. A missing slot is tolerated: the appointment is removed
// either way.
func (r *AppointmentRepository) Cancel(appt *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.DoctorAvailability{}).
			Where("id = ?", appt.SlotID).
			Updates(map[string]interface{}{
				"is_booked":      false,
				"appointment_id": nil,
			}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, appt.ID).Error
	})
}

// FindByID retrieves an appointment by ID
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.First(&appt, id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// FindAll retrieves all appointments
func (r *AppointmentRepository) FindAll() ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Order("appointment_time ASC").Find(&appts).Error
	return appts, err
}

// FindByPatientID retrieves all appointments of a patient
func (r *AppointmentRepository) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Order("appointment_time ASC").
		Find(&appts).Error
	return appts, err
}

// FindByDoctorID retrieves all appointments of a doctor
func (r *AppointmentRepository) FindByDoctorID(doctorID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Order("appointment_time ASC").
		Find(&appts).Error
	return appts, err
}

// FindByDepartmentID retrieves all appointments of a department
func (r *AppointmentRepository) FindByDepartmentID(departmentID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("department_id = ?", departmentID).
		Order("appointment_time ASC").
		Find(&appts).Error
	return appts, err
}

// Save persists changes to an existing appointment
func (r *AppointmentRepository) Save(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}
