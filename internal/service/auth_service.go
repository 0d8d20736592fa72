package service

import (
	"fmt"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"
)

type AuthService struct {
	staffRepo *repository.StaffRepository
	audit     AuditLogger
}

func NewAuthService(staffRepo *repository.StaffRepository, audit AuditLogger) *AuthService {
	return &AuthService{
		staffRepo: staffRepo,
		audit:     audit,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Staff        StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates a staff user and returns tokens
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	staff, err := s.staffRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(staff.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueTokens(staff)
	if err != nil {
		return nil, err
	}

	s.audit.Record(&staff.ID, "staff.login", fmt.Sprintf("staff %s logged in", username))
	return resp, nil
}

// Register creates a new staff account
func (s *AuthService) Register(username, password, role string) (*LoginResponse, error) {
	if existing, err := s.staffRepo.FindByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role != "admin" {
		role = "staff"
	}

	staff := &models.StaffUser{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.staffRepo.Create(staff); err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", err)
	}

	resp, err := s.issueTokens(staff)
	if err != nil {
		return nil, err
	}

	s.audit.Record(&staff.ID, "staff.register", fmt.Sprintf("staff %s registered with role %s", username, staff.Role))
	return resp, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.staffRepo.FindRefreshToken(tokenHash)
	if err != nil {
		return "", ErrInvalidToken
	}

	staff, err := s.staffRepo.FindByID(token.UserID)
	if err != nil {
		return "", ErrInvalidToken
	}

	accessToken, err := utils.GenerateAccessToken(staff.ID, staff.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.staffRepo.RevokeRefreshToken(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) issueTokens(staff *models.StaffUser) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(staff.ID, staff.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	stored := &models.RefreshToken{
		UserID:    staff.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.staffRepo.CreateRefreshToken(stored); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Staff: StaffResponse{
			ID:       staff.ID,
			Username: staff.Username,
			Role:     staff.Role,
		},
	}, nil
}
