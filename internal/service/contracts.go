package service

import "github.com/SanjogGautam/Smart-Swastha/internal/models"

// Narrow store interfaces consumed by the booking-related services.
// The gorm repositories satisfy them; tests swap in in-memory fakes.

type PatientStore interface {
	FindByID(id uint) (*models.Patient, error)
}

type DepartmentStore interface {
	FindByID(id uint) (*models.Department, error)
}

type DoctorStore interface {
	FindByID(id uint) (*models.Doctor, error)
}

type SlotStore interface {
	Create(slot *models.DoctorAvailability) error
	FindByID(id uint) (*models.DoctorAvailability, error)
	FindFreeByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error)
	FindAllByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error)
	Save(slot *models.DoctorAvailability) error
	Delete(id uint) error
}

type AppointmentStore interface {
	Book(appt *models.Appointment) error
	Cancel(appt *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	FindAll() ([]models.Appointment, error)
	FindByPatientID(patientID uint) ([]models.Appointment, error)
	FindByDoctorID(doctorID uint) ([]models.Appointment, error)
	FindByDepartmentID(departmentID uint) ([]models.Appointment, error)
	Save(appt *models.Appointment) error
}

// AuditLogger records booking activity. Implementations must not fail
// the calling operation: logging errors are swallowed by AuditService.
type AuditLogger interface {
	Record(staffID *uint, action, details string)
}
