package service

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository) *HospitalService {
	return &HospitalService{hospitalRepo: hospitalRepo}
}

// Create registers a new hospital
func (s *HospitalService) Create(hospital *models.Hospital) error {
	return s.hospitalRepo.Create(hospital)
}

// GetAll retrieves all hospitals
func (s *HospitalService) GetAll() ([]models.Hospital, error) {
	return s.hospitalRepo.FindAll()
}

// GetByID retrieves a hospital by ID
func (s *HospitalService) GetByID(id uint) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return hospital, nil
}

// Update modifies an existing hospital
func (s *HospitalService) Update(id uint, name, address, email string) (*models.Hospital, error) {
	hospital, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	hospital.Name = name
	hospital.Address = address
	hospital.Email = email

	if err := s.hospitalRepo.Save(hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

// Delete removes a hospital and everything it owns
func (s *HospitalService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.hospitalRepo.Delete(id)
}
