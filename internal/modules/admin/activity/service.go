package activity

import (
	"gorm.io/gorm"

	"github.com/minbar-media/admin-core/internal/models"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Recent returns the newest audit entries. Ties on created_at fall back
// to id so ordering stays stable across drivers with second precision.
func (s *Service) Recent(limit int) ([]models.LogModel, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// Pre-allocated so an empty trail serializes as [] rather than null.
	logs := make([]models.LogModel, 0, limit)
	err := s.db.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
