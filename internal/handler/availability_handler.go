package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityService *service.AvailabilityService
}

func NewAvailabilityHandler(availabilityService *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// CreateSlot registers a new availability slot for a doctor
func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	var body struct {
		DoctorID  uint   `json:"doctor_id"`
		Date      string `json:"available_date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.DoctorID == 0 || body.Date == "" || body.StartTime == "" || body.EndTime == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "doctor_id, available_date, start_time, and end_time are required")
		return
	}

	slot, err := h.availabilityService.Create(service.CreateSlotRequest{
		DoctorID:  body.DoctorID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDoctorNotFound),
			errors.Is(err, service.ErrInvalidSlotTime):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create slot")
		}
		return
	}

	utils.CreatedResponse(c, slot)
}

// GetSlot retrieves a specific slot by ID
func (h *AvailabilityHandler) GetSlot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	slot, err := h.availabilityService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch slot")
		return
	}

	utils.SuccessResponse(c, slot)
}

// GetFreeSlots retrieves the unbooked slots of a doctor on a date
func (h *AvailabilityHandler) GetFreeSlots(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	slots, err := h.availabilityService.ListFree(uint(doctorID), date)
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch slots")
		return
	}

	if len(slots) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, slots)
}

// GetAllSlots retrieves every slot of a doctor on a date, booked or not
func (h *AvailabilityHandler) GetAllSlots(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	slots, err := h.availabilityService.ListAll(uint(doctorID), date)
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch slots")
		return
	}

	if len(slots) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, slots)
}

// UpdateSlot modifies a slot, including the administrative booked override
func (h *AvailabilityHandler) UpdateSlot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	var body struct {
		Date      *string `json:"available_date"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
		IsBooked  *bool   `json:"is_booked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	slot, err := h.availabilityService.Update(uint(id), service.UpdateSlotRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		IsBooked:  body.IsBooked,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidSlotTime):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update slot")
		}
		return
	}

	utils.SuccessResponse(c, slot)
}

// DeleteSlot removes a free slot. A booked slot is refused with 409.
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	if err := h.availabilityService.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotInUse):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete slot")
		}
		return
	}

	utils.NoContentResponse(c)
}
