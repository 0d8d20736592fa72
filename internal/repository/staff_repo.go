package repository

import (
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts a new staff user
func (r *StaffRepository) Create(user *models.StaffUser) error {
	return r.db.Create(user).Error
}

// FindByUsername retrieves a staff user by username
func (r *StaffRepository) FindByUsername(username string) (*models.StaffUser, error) {
	var user models.StaffUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves a staff user by ID
func (r *StaffRepository) FindByID(id uint) (*models.StaffUser, error) {
	var user models.StaffUser
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateRefreshToken stores a new refresh token
func (r *StaffRepository) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindRefreshToken retrieves a live refresh token by its hash
func (r *StaffRepository) FindRefreshToken(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ? AND revoked = ? AND expires_at > ?",
		tokenHash, false, time.Now()).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// RevokeRefreshToken marks a refresh token as revoked
func (r *StaffRepository) RevokeRefreshToken(tokenHash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// DeleteExpiredTokens removes refresh tokens that are expired or revoked.
// It returns the number of rows removed.
func (r *StaffRepository) DeleteExpiredTokens() (int64, error) {
	res := r.db.Where("expires_at <= ? OR revoked = ?", time.Now(), true).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
