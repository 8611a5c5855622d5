package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is the only locally persisted record. A session older than 30 days
// is treated as absent and purged on read.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;index"`
	Picture   string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
