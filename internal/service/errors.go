package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes with errors.Is, so the strings never need parsing.
var (
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrSlotNotFound        = errors.New("availability slot not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrReportNotFound      = errors.New("report not found")

	// Booking conflicts
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrSlotInUse         = errors.New("slot has an active appointment")

	// Referential mismatches rejected before any write
	ErrSlotDoctorMismatch         = errors.New("slot does not belong to the doctor")
	ErrDoctorDepartmentMismatch   = errors.New("doctor does not belong to the department")
	ErrDepartmentHospitalMismatch = errors.New("department does not belong to the hospital")

	// Rescheduling to a different slot is not supported
	ErrSlotChangeUnsupported = errors.New("changing the appointment slot is not supported")

	// Slot shape problems
	ErrInvalidSlotTime = errors.New("invalid slot time")

	// Auth
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
