package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create creates a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindAll retrieves all patients
func (r *PatientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("name ASC").Find(&patients).Error
	return patients, err
}

// FindByID retrieves a patient by ID
func (r *PatientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindByHospitalID retrieves all patients registered with a hospital
func (r *PatientRepository) FindByHospitalID(hospitalID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("hospital_id = ?", hospitalID).
		Order("name ASC").
		Find(&patients).Error
	return patients, err
}

// Save persists changes to an existing patient
func (r *PatientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes a patient and, via cascade, their appointments and reports
func (r *PatientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Patient{}, id).Error
}
