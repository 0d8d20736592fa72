package service

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	hospitalRepo   *repository.HospitalRepository
}

func NewDepartmentService(
	departmentRepo *repository.DepartmentRepository,
	hospitalRepo *repository.HospitalRepository,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		hospitalRepo:   hospitalRepo,
	}
}

// Create registers a new department under an existing hospital
func (s *DepartmentService) Create(hospitalID uint, name, description string) (*models.Department, error) {
	if _, err := s.hospitalRepo.FindByID(hospitalID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	department := &models.Department{
		HospitalID:  hospitalID,
		Name:        name,
		Description: description,
	}
	if err := s.departmentRepo.Create(department); err != nil {
		return nil, err
	}
	return department, nil
}

// GetAll retrieves all departments
func (s *DepartmentService) GetAll() ([]models.Department, error) {
	return s.departmentRepo.FindAll()
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(id uint) (*models.Department, error) {
	department, err := s.departmentRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return department, nil
}

// GetByHospital retrieves all departments of a hospital
func (s *DepartmentService) GetByHospital(hospitalID uint) ([]models.Department, error) {
	if _, err := s.hospitalRepo.FindByID(hospitalID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return s.departmentRepo.FindByHospitalID(hospitalID)
}

// Update modifies an existing department
func (s *DepartmentService) Update(id uint, name, description string) (*models.Department, error) {
	department, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	department.Name = name
	department.Description = description

	if err := s.departmentRepo.Save(department); err != nil {
		return nil, err
	}
	return department, nil
}

// Delete removes a department and, via cascade, its doctors and appointments
func (s *DepartmentService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(id)
}
