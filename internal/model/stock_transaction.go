package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movement types recorded on the ledger.
const (
	TxTypeIn       = "IN"
	TxTypeOut      = "OUT"
	TxTypeTransfer = "TRANSFER"
)

// StockTransaction is one immutable ledger entry: a movement plus a
// point-in-time snapshot of the affected stock's descriptive fields, so the
// ledger stays meaningful even after the stock row changes or is soft-deleted.
// Exactly one of DrumStockID / LooseStockID is set.
type StockTransaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	DrumStockID  *uuid.UUID `gorm:"type:uuid;index"`
	LooseStockID *uuid.UUID `gorm:"type:uuid;index"`

	Type         string          `gorm:"not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit         string          `gorm:"not null"`

	// Snapshot of the stock's descriptive fields at movement time.
	Size          string
	ConductorType string
	ArmourType    string
	FireRating    string
	Details       string
	Make          string
	PartNo        string

	// Dispatch metadata (OUT only).
	DispatchedCompany string
	InvoiceNumber     string
	DispatchedDate    time.Time
	CoilsDispatched   *int

	FromGodownID *uuid.UUID `gorm:"type:uuid;index"`
	ToGodownID   *uuid.UUID `gorm:"type:uuid"`

	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"index"`

	User       *User   `gorm:"foreignKey:UserID"`
	FromGodown *Godown `gorm:"foreignKey:FromGodownID"`
	ToGodown   *Godown `gorm:"foreignKey:ToGodownID"`
}

func (t *StockTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
