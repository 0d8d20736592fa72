package service

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

type DoctorService struct {
	doctorRepo     *repository.DoctorRepository
	hospitalRepo   *repository.HospitalRepository
	departmentRepo *repository.DepartmentRepository
}

func NewDoctorService(
	doctorRepo *repository.DoctorRepository,
	hospitalRepo *repository.HospitalRepository,
	departmentRepo *repository.DepartmentRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo:     doctorRepo,
		hospitalRepo:   hospitalRepo,
		departmentRepo: departmentRepo,
	}
}

// Create registers a new doctor. The department must exist and belong to
// the same hospital the doctor is attached to.
func (s *DoctorService) Create(hospitalID, departmentID uint, name, contact, specialization string) (*models.Doctor, error) {
	if _, err := s.hospitalRepo.FindByID(hospitalID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	department, err := s.departmentRepo.FindByID(departmentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	if department.HospitalID != hospitalID {
		return nil, ErrDepartmentHospitalMismatch
	}

	doctor := &models.Doctor{
		HospitalID:     hospitalID,
		DepartmentID:   departmentID,
		Name:           name,
		Contact:        contact,
		Specialization: specialization,
	}
	if err := s.doctorRepo.Create(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// GetAll retrieves all doctors
func (s *DoctorService) GetAll() ([]models.Doctor, error) {
	return s.doctorRepo.FindAll()
}

// GetByID retrieves a doctor by ID
func (s *DoctorService) GetByID(id uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

// GetByDepartment retrieves all doctors of a department
func (s *DoctorService) GetByDepartment(departmentID uint) ([]models.Doctor, error) {
	if _, err := s.departmentRepo.FindByID(departmentID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return s.doctorRepo.FindByDepartmentID(departmentID)
}

// GetByHospitalAndDepartment retrieves doctors of a department within a hospital
func (s *DoctorService) GetByHospitalAndDepartment(hospitalID, departmentID uint) ([]models.Doctor, error) {
	return s.doctorRepo.FindByHospitalAndDepartment(hospitalID, departmentID)
}

// Update modifies an existing doctor. Moving a doctor to another department
// re-checks that the target department exists and stays within the doctor's
// hospital.
func (s *DoctorService) Update(id uint, departmentID uint, name, contact, specialization string) (*models.Doctor, error) {
	doctor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if departmentID != 0 && departmentID != doctor.DepartmentID {
		department, err := s.departmentRepo.FindByID(departmentID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		if department.HospitalID != doctor.HospitalID {
			return nil, ErrDepartmentHospitalMismatch
		}
		doctor.DepartmentID = departmentID
	}

	doctor.Name = name
	doctor.Contact = contact
	doctor.Specialization = specialization

	if err := s.doctorRepo.Save(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// Delete removes a doctor and, via cascade, their availabilities and appointments
func (s *DoctorService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.doctorRepo.Delete(id)
}
