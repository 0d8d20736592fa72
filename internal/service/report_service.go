package service

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
	"github.com/SanjogGautam/Smart-Swastha/internal/storage"
)

type ReportService struct {
	reportRepo  *repository.ReportRepository
	patientRepo *repository.PatientRepository
	store       *storage.FileStore
	audit       AuditLogger
}

func NewReportService(
	reportRepo *repository.ReportRepository,
	patientRepo *repository.PatientRepository,
	store *storage.FileStore,
	audit AuditLogger,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		patientRepo: patientRepo,
		store:       store,
		audit:       audit,
	}
}

// Upload stores a report file for a patient and records its metadata.
// The file is written first; if the metadata insert fails the stored
// object is removed again.
func (s *ReportService) Upload(patientID uint, reportType, filename, uploadedBy string, content io.Reader) (*models.PatientReport, error) {
	if _, err := s.patientRepo.FindByID(patientID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectID, err := s.store.Save(content, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to store report file: %w", err)
	}

	report := &models.PatientReport{
		PatientID:  patientID,
		ReportType: reportType,
		ReportURL:  "/files/reports/" + objectID,
		ObjectID:   objectID,
		UploadedBy: uploadedBy,
	}
	if err := s.reportRepo.Create(report); err != nil {
		_ = s.store.Remove(objectID)
		return nil, err
	}

	s.audit.Record(nil, "report.upload",
		fmt.Sprintf("report %d (%s) uploaded for patient %d", report.ID, reportType, patientID))

	return report, nil
}

// GetByID retrieves a report by ID
func (s *ReportService) GetByID(id uint) (*models.PatientReport, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

// GetByPatient retrieves all reports of a patient
func (s *ReportService) GetByPatient(patientID uint) ([]models.PatientReport, error) {
	if _, err := s.patientRepo.FindByID(patientID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return s.reportRepo.FindByPatientID(patientID)
}

// FilePath resolves the stored file location of a report
func (s *ReportService) FilePath(id uint) (string, error) {
	report, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	return s.store.Path(report.ObjectID), nil
}

// Delete removes a report record and its stored file
func (s *ReportService) Delete(id uint) error {
	report, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.reportRepo.Delete(id); err != nil {
		return err
	}
	if err := s.store.Remove(report.ObjectID); err != nil {
		// Metadata is gone; an orphaned file is only worth a log line
		log.Printf("Error removing report object %s: %v", report.ObjectID, err)
	}

	s.audit.Record(nil, "report.delete",
		fmt.Sprintf("report %d removed for patient %d", report.ID, report.PatientID))

	return nil
}
