package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LooseStock is unserialized bulk cable tracked by quantity only — no drum
// number, no coil structure, and a free-form unit instead of the fixed meters.
type LooseStock struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Size          string `gorm:"not null"`
	ConductorType string `gorm:"not null"`
	ArmourType    string `gorm:"not null"`
	FireRating    string `gorm:"not null"`
	Details       string `gorm:"not null"`
	Make          string `gorm:"not null"`
	PartNo        string

	Quantity decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit     string          `gorm:"not null"`

	GodownID uuid.UUID `gorm:"type:uuid;not null;index"`

	IsDeleted bool `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Godown *Godown `gorm:"foreignKey:GodownID"`
}

func (s *LooseStock) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
