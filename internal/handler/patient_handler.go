package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// RegisterPatient creates a new patient under a hospital
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var body struct {
		HospitalID uint   `json:"hospital_id"`
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Gender     string `json:"gender"`
		Age        int    `json:"age"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.HospitalID == 0 || body.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "hospital_id and name are required")
		return
	}

	patient, err := h.patientService.Register(body.HospitalID, body.Name, body.Phone, body.Gender, body.Age)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register patient")
		return
	}

	utils.CreatedResponse(c, patient)
}

// GetAllPatients retrieves all patients
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.patientService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	if len(patients) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, patients)
}

// GetPatient retrieves a specific patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		return
	}

	utils.SuccessResponse(c, patient)
}

// GetPatientsByHospital retrieves all patients registered with a hospital
func (h *PatientHandler) GetPatientsByHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	patients, err := h.patientService.GetByHospital(uint(hospitalID))
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	if len(patients) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, patients)
}

// UpdatePatient modifies an existing patient
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var body struct {
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		Gender string `json:"gender"`
		Age    int    `json:"age"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Update(uint(id), body.Name, body.Phone, body.Gender, body.Age)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update patient")
		return
	}

	utils.SuccessResponse(c, patient)
}

// DeletePatient removes a patient
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete patient")
		return
	}

	utils.NoContentResponse(c)
}
