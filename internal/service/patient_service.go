package service

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

type PatientService struct {
	patientRepo  *repository.PatientRepository
	hospitalRepo *repository.HospitalRepository
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	hospitalRepo *repository.HospitalRepository,
) *PatientService {
	return &PatientService{
		patientRepo:  patientRepo,
		hospitalRepo: hospitalRepo,
	}
}

// Register creates a new patient under an existing hospital
func (s *PatientService) Register(hospitalID uint, name, phone, gender string, age int) (*models.Patient, error) {
	if _, err := s.hospitalRepo.FindByID(hospitalID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	patient := &models.Patient{
		HospitalID: hospitalID,
		Name:       name,
		Phone:      phone,
		Gender:     gender,
		Age:        age,
	}
	if err := s.patientRepo.Create(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetAll retrieves all patients
func (s *PatientService) GetAll() ([]models.Patient, error) {
	return s.patientRepo.FindAll()
}

// GetByID retrieves a patient by ID
func (s *PatientService) GetByID(id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// GetByHospital retrieves all patients registered with a hospital
func (s *PatientService) GetByHospital(hospitalID uint) ([]models.Patient, error) {
	if _, err := s.hospitalRepo.FindByID(hospitalID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return s.patientRepo.FindByHospitalID(hospitalID)
}

// Update modifies an existing patient
func (s *PatientService) Update(id uint, name, phone, gender string, age int) (*models.Patient, error) {
	patient, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	patient.Name = name
	patient.Phone = phone
	patient.Gender = gender
	patient.Age = age

	if err := s.patientRepo.Save(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete removes a patient and, via cascade, their appointments and reports
func (s *PatientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.patientRepo.Delete(id)
}
