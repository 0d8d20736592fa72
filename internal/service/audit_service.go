package service

import (
	"log"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

// AuditService writes booking activity to the audit trail. A failed write
// never fails the operation that triggered it; it is only logged.
type AuditService struct {
	auditRepo *repository.AuditRepository
}

func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record stores one audit entry. staffID is nil for public booking actions.
func (s *AuditService) Record(staffID *uint, action, details string) {
	entry := &models.AuditLog{
		StaffID: staffID,
		Action:  action,
		Details: details,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		log.Printf("Error writing audit entry %q: %v", action, err)
	}
}

// Recent retrieves the most recent audit entries up to limit
func (s *AuditService) Recent(limit int) ([]models.AuditLog, error) {
	return s.auditRepo.FindRecent(limit)
}

// ByAction retrieves recent audit entries for one action
func (s *AuditService) ByAction(action string, limit int) ([]models.AuditLog, error) {
	return s.auditRepo.FindByAction(action, limit)
}
