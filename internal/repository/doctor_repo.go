package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create creates a new doctor
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// FindAll retrieves all doctors
func (r *DoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("name ASC").Find(&doctors).Error
	return doctors, err
}

// FindByID retrieves a doctor by ID
func (r *DoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// FindByDepartmentID retrieves all doctors of a department
func (r *DoctorRepository) FindByDepartmentID(departmentID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// FindByHospitalAndDepartment retrieves doctors of a department within a hospital
func (r *DoctorRepository) FindByHospitalAndDepartment(hospitalID, departmentID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("hospital_id = ? AND department_id = ?", hospitalID, departmentID).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// Save persists changes to an existing doctor
func (r *DoctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// Delete removes a doctor and, via cascade, their availabilities and appointments
func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
