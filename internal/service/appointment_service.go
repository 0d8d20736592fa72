package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

// BookingRequest carries the identifiers needed to claim a slot
type BookingRequest struct {
	PatientID    uint
	DepartmentID uint
	DoctorID     uint
	SlotID       uint
	Reason       string
}

// UpdateAppointmentRequest carries optional reassignments for an existing
// appointment. Nil fields are left untouched; Reason is always applied.
type UpdateAppointmentRequest struct {
	PatientID    *uint
	DepartmentID *uint
	DoctorID     *uint
	SlotID       *uint
	Reason       string
}

type AppointmentService struct {
	appointments AppointmentStore
	slots        SlotStore
	patients     PatientStore
	departments  DepartmentStore
	doctors      DoctorStore
	audit        AuditLogger
}

func NewAppointmentService(
	appointments AppointmentStore,
	slots SlotStore,
	patients PatientStore,
	departments DepartmentStore,
	doctors DoctorStore,
	audit AuditLogger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		slots:        slots,
		patients:     patients,
		departments:  departments,
		doctors:      doctors,
		audit:        audit,
	}
}

// Book validates the booking request against every referenced entity and
// then claims the slot. Validation fails fast in a fixed order: patient,
// department, doctor, slot existence, then slot state and ownership. No
// write happens until all checks pass; the final claim is atomic in the
// store, so concurrent bookings of the same slot yield exactly one winner.
func (s *AppointmentService) Book(req BookingRequest) (*models.Appointment, error) {
	if _, err := s.patients.FindByID(req.PatientID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	if _, err := s.departments.FindByID(req.DepartmentID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	doctor, err := s.doctors.FindByID(req.DoctorID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	slot, err := s.slots.FindByID(req.SlotID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if slot.IsBooked {
		return nil, ErrSlotAlreadyBooked
	}
	if slot.DoctorID != req.DoctorID {
		return nil, ErrSlotDoctorMismatch
	}
	if doctor.DepartmentID != req.DepartmentID {
		return nil, ErrDoctorDepartmentMismatch
	}

	when, err := slotStart(slot)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		AppointmentTime: when,
		Reason:          req.Reason,
		PatientID:       req.PatientID,
		DepartmentID:    req.DepartmentID,
		DoctorID:        req.DoctorID,
		SlotID:          req.SlotID,
	}

	if err := s.appointments.Book(appt); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			return nil, ErrSlotAlreadyBooked
		case repository.IsNotFound(err):
			// Slot vanished between the check and the claim
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	s.audit.Record(nil, "appointment.book",
		fmt.Sprintf("appointment %d booked slot %d for patient %d", appt.ID, appt.SlotID, appt.PatientID))

	return appt, nil
}

// Update applies the request to an existing appointment. Reassigning the
// patient, department or doctor only re-checks that the new entity exists;
// moving the appointment to a different slot is rejected outright, since
// that would require a cancel-and-rebook cycle to keep the slot state sound.
func (s *AppointmentService) Update(id uint, req UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.appointments.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if req.SlotID != nil && *req.SlotID != appt.SlotID {
		return nil, ErrSlotChangeUnsupported
	}

	if req.PatientID != nil && *req.PatientID != appt.PatientID {
		if _, err := s.patients.FindByID(*req.PatientID); err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrPatientNotFound
			}
			return nil, err
		}
		appt.PatientID = *req.PatientID
	}

	if req.DepartmentID != nil && *req.DepartmentID != appt.DepartmentID {
		if _, err := s.departments.FindByID(*req.DepartmentID); err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		appt.DepartmentID = *req.DepartmentID
	}

	if req.DoctorID != nil && *req.DoctorID != appt.DoctorID {
		if _, err := s.doctors.FindByID(*req.DoctorID); err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrDoctorNotFound
			}
			return nil, err
		}
		appt.DoctorID = *req.DoctorID
	}

	appt.Reason = req.Reason

	if err := s.appointments.Save(appt); err != nil {
		return nil, err
	}

	s.audit.Record(nil, "appointment.update",
		fmt.Sprintf("appointment %d updated", appt.ID))

	return appt, nil
}

// Cancel removes the appointment and frees its slot. A slot that has
// already disappeared does not block the cancellation.
func (s *AppointmentService) Cancel(id uint) error {
	appt, err := s.appointments.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return err
	}

	if err := s.appointments.Cancel(appt); err != nil {
		return err
	}

	s.audit.Record(nil, "appointment.cancel",
		fmt.Sprintf("appointment %d cancelled, slot %d freed", appt.ID, appt.SlotID))

	return nil
}

// GetByID retrieves a single appointment
func (s *AppointmentService) GetByID(id uint) (*models.Appointment, error) {
	appt, err := s.appointments.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// GetAll retrieves all appointments
func (s *AppointmentService) GetAll() ([]models.Appointment, error) {
	return s.appointments.FindAll()
}

// GetByPatient retrieves all appointments of a patient
func (s *AppointmentService) GetByPatient(patientID uint) ([]models.Appointment, error) {
	return s.appointments.FindByPatientID(patientID)
}

// GetByDoctor retrieves all appointments of a doctor
func (s *AppointmentService) GetByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.appointments.FindByDoctorID(doctorID)
}

// GetByDepartment retrieves all appointments of a department
func (s *AppointmentService) GetByDepartment(departmentID uint) ([]models.Appointment, error) {
	return s.appointments.FindByDepartmentID(departmentID)
}

// slotStart combines the slot's date with its "HH:MM" start time into a
// single local wall-clock timestamp.
func slotStart(slot *models.DoctorAvailability) (time.Time, error) {
	t, err := time.Parse("15:04", slot.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotTime, slot.StartTime)
	}
	d := slot.Date
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
