package service

import (
	"context"
	"log"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
)

// CleanupService periodically purges expired and revoked refresh tokens
type CleanupService struct {
	staffRepo *repository.StaffRepository
	interval  time.Duration
}

func NewCleanupService(staffRepo *repository.StaffRepository, interval time.Duration) *CleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CleanupService{
		staffRepo: staffRepo,
		interval:  interval,
	}
}

// Start begins the background cleanup loop. It runs until ctx is cancelled.
func (s *CleanupService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Token cleanup worker started - running every %v", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Token cleanup worker stopped")
			return
		case <-ticker.C:
			s.purge()
		}
	}
}

func (s *CleanupService) purge() {
	removed, err := s.staffRepo.DeleteExpiredTokens()
	if err != nil {
		log.Printf("Error purging refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Purged %d stale refresh tokens", removed)
	}
}
