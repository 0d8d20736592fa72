package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// CreateHospital registers a new hospital
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if hospital.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.hospitalService.Create(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospital")
		return
	}

	utils.CreatedResponse(c, hospital)
}

// GetAllHospitals retrieves all hospitals
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	if len(hospitals) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, hospitals)
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// UpdateHospital modifies an existing hospital
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.Update(uint(id), body.Name, body.Address, body.Email)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// DeleteHospital removes a hospital and everything it owns
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	if err := h.hospitalService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete hospital")
		return
	}

	utils.NoContentResponse(c)
}
