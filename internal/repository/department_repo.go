package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// FindAll retrieves all departments
func (r *DepartmentRepository) FindAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

// FindByID retrieves a department by ID
func (r *DepartmentRepository) FindByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByHospitalID retrieves all departments of a hospital
func (r *DepartmentRepository) FindByHospitalID(hospitalID uint) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("hospital_id = ?", hospitalID).
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}

// Save persists changes to an existing department
func (r *DepartmentRepository) Save(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete removes a department and, via cascade, its doctors and appointments
func (r *DepartmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Department{}, id).Error
}
