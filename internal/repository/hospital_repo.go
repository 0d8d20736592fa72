package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create creates a new hospital
func (r *HospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// FindAll retrieves all hospitals
func (r *HospitalRepository) FindAll() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// FindByID retrieves a hospital by ID
func (r *HospitalRepository) FindByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.First(&hospital, id).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

// Save persists changes to an existing hospital
func (r *HospitalRepository) Save(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

// Delete removes a hospital. The ON DELETE CASCADE constraints take its
// departments, doctors and patients with it.
func (r *HospitalRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hospital{}, id).Error
}
