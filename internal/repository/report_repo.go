package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new patient report record
func (r *ReportRepository) Create(report *models.PatientReport) error {
	return r.db.Create(report).Error
}

// FindByID retrieves a report by ID
func (r *ReportRepository) FindByID(id uint) (*models.PatientReport, error) {
	var report models.PatientReport
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindByPatientID retrieves all reports of a patient
func (r *ReportRepository) FindByPatientID(patientID uint) ([]models.PatientReport, error) {
	var reports []models.PatientReport
	err := r.db.Where("patient_id = ?", patientID).
		Order("uploaded_at DESC").
		Find(&reports).Error
	return reports, err
}

// Delete removes a report record
func (r *ReportRepository) Delete(id uint) error {
	return r.db.Delete(&models.PatientReport{}, id).Error
}
