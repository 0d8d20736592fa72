package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// CreateDepartment registers a new department under a hospital
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	department, err := h.departmentService.Create(uint(hospitalID), body.Name, body.Description)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create department")
		return
	}

	utils.CreatedResponse(c, department)
}

// GetDepartmentsByHospital retrieves all departments of a hospital
func (h *DepartmentHandler) GetDepartmentsByHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	departments, err := h.departmentService.GetByHospital(uint(hospitalID))
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}

	if len(departments) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, departments)
}

// GetDepartment retrieves a specific department by ID
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch department")
		return
	}

	utils.SuccessResponse(c, department)
}

// UpdateDepartment modifies an existing department
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	department, err := h.departmentService.Update(uint(id), body.Name, body.Description)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update department")
		return
	}

	utils.SuccessResponse(c, department)
}

// DeleteDepartment removes a department
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	if err := h.departmentService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete department")
		return
	}

	utils.NoContentResponse(c)
}
