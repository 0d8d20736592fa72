package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// BookAppointment books an availability slot for a patient
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var body struct {
		PatientID    uint   `json:"patient_id"`
		DepartmentID uint   `json:"department_id"`
		DoctorID     uint   `json:"doctor_id"`
		SlotID       uint   `json:"available_slot_id"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.PatientID == 0 || body.DepartmentID == 0 || body.DoctorID == 0 || body.SlotID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "patient_id, department_id, doctor_id, and available_slot_id are required")
		return
	}

	appt, err := h.appointmentService.Book(service.BookingRequest{
		PatientID:    body.PatientID,
		DepartmentID: body.DepartmentID,
		DoctorID:     body.DoctorID,
		SlotID:       body.SlotID,
		Reason:       body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatientNotFound),
			errors.Is(err, service.ErrDepartmentNotFound),
			errors.Is(err, service.ErrDoctorNotFound),
			errors.Is(err, service.ErrSlotNotFound):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSlotAlreadyBooked):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrSlotDoctorMismatch),
			errors.Is(err, service.ErrDoctorDepartmentMismatch),
			errors.Is(err, service.ErrInvalidSlotTime):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to book appointment")
		}
		return
	}

	utils.CreatedResponse(c, appt)
}

// GetAppointment retrieves a specific appointment by ID
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appt, err := h.appointmentService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointment")
		return
	}

	utils.SuccessResponse(c, appt)
}

// GetAllAppointments retrieves all appointments
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appts, err := h.appointmentService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	if len(appts) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, appts)
}

// GetAppointmentsByPatient retrieves all appointments of a patient
func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	appts, err := h.appointmentService.GetByPatient(uint(patientID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	if len(appts) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, appts)
}

// GetAppointmentsByDoctor retrieves all appointments of a doctor
func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	appts, err := h.appointmentService.GetByDoctor(uint(doctorID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	if len(appts) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, appts)
}

// GetAppointmentsByDepartment retrieves all appointments of a department
func (h *AppointmentHandler) GetAppointmentsByDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	appts, err := h.appointmentService.GetByDepartment(uint(departmentID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	if len(appts) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, appts)
}

// UpdateAppointment modifies an existing appointment. Supplying a slot ID
// different from the current one is rejected.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var body struct {
		PatientID    *uint  `json:"patient_id"`
		DepartmentID *uint  `json:"department_id"`
		DoctorID     *uint  `json:"doctor_id"`
		SlotID       *uint  `json:"available_slot_id"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appt, err := h.appointmentService.Update(uint(id), service.UpdateAppointmentRequest{
		PatientID:    body.PatientID,
		DepartmentID: body.DepartmentID,
		DoctorID:     body.DoctorID,
		SlotID:       body.SlotID,
		Reason:       body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotChangeUnsupported),
			errors.Is(err, service.ErrPatientNotFound),
			errors.Is(err, service.ErrDepartmentNotFound),
			errors.Is(err, service.ErrDoctorNotFound):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	utils.SuccessResponse(c, appt)
}

// CancelAppointment removes an appointment and frees its slot
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.Cancel(uint(id)); err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}

	utils.NoContentResponse(c)
}
