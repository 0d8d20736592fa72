package repository

import (
	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AuditRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// FindRecent retrieves the most recent audit log entries up to limit
func (r *AuditRepository) FindRecent(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Preload("Staff").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// FindByAction retrieves audit log entries for a given action
func (r *AuditRepository) FindByAction(action string, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Preload("Staff").
		Where("action = ?", action).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
