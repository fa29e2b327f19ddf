package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stock status values. The movement engine only ever derives StatusDepleted
// (present quantity reaching exactly zero); the RUNNING/LOW split is a display
// policy applied against a configured threshold — see service.StatusFor.
const (
	StatusRunning  = "RUNNING"
	StatusLow      = "LOW"
	StatusDepleted = "DEPLETED"
)

// UnitMeters is the fixed unit for all drum quantities.
const UnitMeters = "Meters"

// DrumStock is a single serialized cable drum, identified by its unique drum
// number. Descriptive fields are immutable after creation; PresentQuantity and
// (for multi-coil drums) CoilsRemaining are mutated by movements only.
type DrumStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DrumNumber string    `gorm:"uniqueIndex;not null"`

	Size          string `gorm:"not null"`
	ConductorType string `gorm:"not null"`
	ArmourType    string `gorm:"not null"`
	FireRating    string `gorm:"not null"`
	Details       string `gorm:"not null"`
	Make          string `gorm:"not null"`
	PartNo        string
	PackagingType string `gorm:"not null;default:'DRUM'"`

	InitialQuantity decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PresentQuantity decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status          string          `gorm:"not null;default:'RUNNING'"`

	GodownID uuid.UUID `gorm:"type:uuid;not null;index"`
	Site     string    `gorm:"not null"`
	Location string

	// Multi-coil variant: fixed-size coils dispatched only as whole units.
	IsMultiCoil    bool            `gorm:"not null;default:false"`
	QtyPerCoil     decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalCoils     int             `gorm:"not null;default:0"`
	CoilsRemaining int             `gorm:"not null;default:0"`

	IsDeleted bool `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Godown *Godown `gorm:"foreignKey:GodownID"`
}

func (s *DrumStock) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
