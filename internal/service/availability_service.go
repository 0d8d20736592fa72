package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

// CreateSlotRequest describes a new availability window
type CreateSlotRequest struct {
	DoctorID  uint
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// UpdateSlotRequest carries optional slot field changes. Setting IsBooked
// here is an administrative override: it flips the flag without touching
// any appointment.
type UpdateSlotRequest struct {
	Date      *string
	StartTime *string
	EndTime   *string
	IsBooked  *bool
}

type AvailabilityService struct {
	slots   SlotStore
	doctors DoctorStore
	audit   AuditLogger
}

func NewAvailabilityService(slots SlotStore, doctors DoctorStore, audit AuditLogger) *AvailabilityService {
	return &AvailabilityService{slots: slots, doctors: doctors, audit: audit}
}

// Create registers a new availability slot for a doctor. New slots always
// start free regardless of any flag the caller supplies.
func (s *AvailabilityService) Create(req CreateSlotRequest) (*models.DoctorAvailability, error) {
	if _, err := s.doctors.FindByID(req.DoctorID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, req.Date)
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, req.StartTime)
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, req.EndTime)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start %q is not before end %q", ErrInvalidSlotTime, req.StartTime, req.EndTime)
	}

	slot := &models.DoctorAvailability{
		DoctorID:  req.DoctorID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsBooked:  false,
	}
	if err := s.slots.Create(slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// GetByID retrieves a single slot
func (s *AvailabilityService) GetByID(id uint) (*models.DoctorAvailability, error) {
	slot, err := s.slots.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

// ListFree retrieves the unbooked slots of a doctor on a date
func (s *AvailabilityService) ListFree(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	if _, err := s.doctors.FindByID(doctorID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return s.slots.FindFreeByDoctorAndDate(doctorID, date)
}

// ListAll retrieves every slot of a doctor on a date, booked or not
func (s *AvailabilityService) ListAll(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	if _, err := s.doctors.FindByID(doctorID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return s.slots.FindAllByDoctorAndDate(doctorID, date)
}

// Update applies field changes to a slot. Flipping IsBooked through this
// path bypasses the appointment back-link on purpose, so every override
// is written to the audit trail.
func (s *AvailabilityService) Update(id uint, req UpdateSlotRequest) (*models.DoctorAvailability, error) {
	slot, err := s.slots.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, *req.Date)
		}
		slot.Date = date
	}
	if req.StartTime != nil {
		if _, err := time.Parse("15:04", *req.StartTime); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, *req.StartTime)
		}
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, err := time.Parse("15:04", *req.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, *req.EndTime)
		}
		slot.EndTime = *req.EndTime
	}

	overridden := false
	if req.IsBooked != nil && *req.IsBooked != slot.IsBooked {
		slot.IsBooked = *req.IsBooked
		overridden = true
	}

	if err := s.slots.Save(slot); err != nil {
		return nil, err
	}

	if overridden {
		s.audit.Record(nil, "slot.override",
			fmt.Sprintf("slot %d booked flag forced to %t", slot.ID, slot.IsBooked))
	}

	return slot, nil
}

// Delete removes a free slot. Booked slots are refused until their
// appointment is cancelled.
func (s *AvailabilityService) Delete(id uint) error {
	err := s.slots.Delete(id)
	switch {
	case err == nil:
		return nil
	case repository.IsNotFound(err):
		return ErrSlotNotFound
	case errors.Is(err, repository.ErrSlotInUse):
		return ErrSlotInUse
	}
	return err
}
