package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// UploadReport stores a report file for a patient (multipart form)
func (h *ReportHandler) UploadReport(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.PostForm("patient_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	reportType := c.PostForm("report_type")
	if reportType == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "report_type is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	uploadedBy := c.PostForm("uploaded_by")

	report, err := h.reportService.Upload(uint(patientID), reportType, fileHeader.Filename, uploadedBy, file)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to upload report")
		return
	}

	utils.CreatedResponse(c, report)
}

// GetReport retrieves report metadata by ID
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.reportService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch report")
		return
	}

	utils.SuccessResponse(c, report)
}

// GetReportsByPatient retrieves all reports of a patient
func (h *ReportHandler) GetReportsByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	reports, err := h.reportService.GetByPatient(uint(patientID))
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}

	if len(reports) == 0 {
		utils.NoContentResponse(c)
		return
	}

	utils.SuccessResponse(c, reports)
}

// DownloadReport streams the stored report file
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	path, err := h.reportService.FilePath(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch report")
		return
	}

	c.File(path)
}

// DeleteReport removes a report and its stored file
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.reportService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete report")
		return
	}

	utils.NoContentResponse(c)
}
