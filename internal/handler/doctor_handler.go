package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// CreateDoctor registers a new doctor
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var body struct {
		HospitalID     uint   `json:"hospital_id"`
		DepartmentID   uint   `json:"department_id"`
		Name           string `json:"name"`
		Contact        string `json:"contact"`
		Specialization string `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.HospitalID == 0 || body.DepartmentID == 0 || body.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "hospital_id, department_id, and name are required")
		return
	}

	doctor, err := h.doctorService.Create(body.HospitalID, body.DepartmentID, body.Name, body.Contact, body.Specialization)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHospitalNotFound),
			errors.Is(err, service.ErrDepartmentNotFound),
			errors.Is(err, service.ErrDepartmentHospitalMismatch):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create doctor")
		}
		return
	}

	utils.CreatedResponse(c, doctor)
}

// GetAllDoctors retrieves all doctors
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	if len(doctors) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, doctors)
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctor")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// GetDoctorsByDepartment retrieves all doctors of a department
func (h *DoctorHandler) GetDoctorsByDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	doctors, err := h.doctorService.GetByDepartment(uint(departmentID))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	if len(doctors) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, doctors)
}

// GetDoctorsByHospitalAndDepartment retrieves doctors of a department within a hospital
func (h *DoctorHandler) GetDoctorsByHospitalAndDepartment(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}
	departmentID, err := strconv.ParseUint(c.Param("departmentId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	doctors, err := h.doctorService.GetByHospitalAndDepartment(uint(hospitalID), uint(departmentID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	if len(doctors) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, doctors)
}

// UpdateDoctor modifies an existing doctor
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var body struct {
		DepartmentID   uint   `json:"department_id"`
		Name           string `json:"name"`
		Contact        string `json:"contact"`
		Specialization string `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.doctorService.Update(uint(id), body.DepartmentID, body.Name, body.Contact, body.Specialization)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDoctorNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDepartmentNotFound),
			errors.Is(err, service.ErrDepartmentHospitalMismatch):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update doctor")
		}
		return
	}

	utils.SuccessResponse(c, doctor)
}

// DeleteDoctor removes a doctor
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete doctor")
		return
	}

	utils.NoContentResponse(c)
}
