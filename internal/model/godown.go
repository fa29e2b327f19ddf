package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Godown is a physical storage location. Stock entities and ledger entries
// reference it as owner / source / destination.
type Godown struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null;index"`
	Location      string    `gorm:"not null"`
	ContactPerson string    `gorm:"not null"`
	ContactNumber string    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g *Godown) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
