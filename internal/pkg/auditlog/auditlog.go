// Package auditlog appends entries to the audit trail. Appends are
// best-effort and subordinate to the mutation that triggered them: a failed
// insert is reported to the server log and otherwise swallowed, never
// propagated to the caller.
package auditlog

import (
	"fmt"

	"github.com/minbar-media/admin-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger}
}

// Append inserts one immutable log entry with a server-assigned timestamp.
func (s *Service) Append(table, message string) {
	entry := models.LogModel{Table: table, Log: message}
	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("audit log append failed",
			zap.String("table", table),
			zap.String("log", message),
			zap.Error(err),
		)
	}
}

// Appendf is Append with fmt.Sprintf formatting.
func (s *Service) Appendf(table, format string, args ...interface{}) {
	s.Append(table, fmt.Sprintf(format, args...))
}
