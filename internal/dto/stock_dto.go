package dto

import "github.com/shopspring/decimal"

// ─── Drum stock ──────────────────────────────────────────────────────────────

type CreateDrumStockRequest struct {
	DrumNumber    string `json:"drum_number"    validate:"required,min=1"`
	Size          string `json:"size"           validate:"required,min=1"`
	ConductorType string `json:"conductor_type" validate:"required,min=1"`
	ArmourType    string `json:"armour_type"    validate:"required,min=1"`
	FireRating    string `json:"fire_rating"    validate:"required,min=1"`
	Details       string `json:"details"        validate:"required,min=1"`
	Make          string `json:"make"           validate:"required,min=1"`
	PartNo        string `json:"part_no"`
	PackagingType string `json:"packaging_type"`

	InitialQuantity decimal.Decimal `json:"initial_quantity" validate:"required,gt=0"`

	GodownID string `json:"godown_id" validate:"required,uuid"`
	Site     string `json:"site"      validate:"required,min=1"`
	Location string `json:"location"`

	IsMultiCoil    bool            `json:"is_multi_coil"`
	QtyPerCoil     decimal.Decimal `json:"qty_per_coil"    validate:"required_if=IsMultiCoil true"`
	TotalCoils     int             `json:"total_coils"     validate:"required_if=IsMultiCoil true,omitempty,min=1"`
}

// DrumStockFilter is bound from the query string of GET /v1/cable-stocks.
type DrumStockFilter struct {
	GodownID   string `form:"godown_id"   validate:"omitempty,uuid"`
	DrumNumber string `form:"drum_number"`
}

type DrumStockResponse struct {
	ID            string `json:"id"`
	DrumNumber    string `json:"drum_number"`
	Size          string `json:"size"`
	ConductorType string `json:"conductor_type"`
	ArmourType    string `json:"armour_type"`
	FireRating    string `json:"fire_rating"`
	Details       string `json:"details"`
	Make          string `json:"make"`
	PartNo        string `json:"part_no,omitempty"`
	PackagingType string `json:"packaging_type"`

	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	PresentQuantity decimal.Decimal `json:"present_quantity"`
	Unit            string          `json:"unit"`
	Status          string          `json:"status"`

	GodownID   string `json:"godown_id"`
	GodownName string `json:"godown_name,omitempty"`
	Site       string `json:"site"`
	Location   string `json:"location,omitempty"`

	IsMultiCoil    bool            `json:"is_multi_coil"`
	QtyPerCoil     decimal.Decimal `json:"qty_per_coil,omitempty"`
	TotalCoils     int             `json:"total_coils,omitempty"`
	CoilsRemaining int             `json:"coils_remaining,omitempty"`

	CreatedAt string `json:"created_at"`
}

// ─── Loose stock ─────────────────────────────────────────────────────────────

type CreateLooseStockRequest struct {
	Size          string `json:"size"           validate:"required,min=1"`
	ConductorType string `json:"conductor_type" validate:"required,min=1"`
	ArmourType    string `json:"armour_type"    validate:"required,min=1"`
	FireRating    string `json:"fire_rating"    validate:"required,min=1"`
	Details       string `json:"details"        validate:"required,min=1"`
	Make          string `json:"make"           validate:"required,min=1"`
	PartNo        string `json:"part_no"`

	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	Unit     string          `json:"unit"     validate:"required,min=1"`

	GodownID string `json:"godown_id" validate:"required,uuid"`
}

type LooseStockFilter struct {
	GodownID string `form:"godown_id" validate:"omitempty,uuid"`
	Size     string `form:"size"`
}

type LooseStockResponse struct {
	ID            string          `json:"id"`
	Size          string          `json:"size"`
	ConductorType string          `json:"conductor_type"`
	ArmourType    string          `json:"armour_type"`
	FireRating    string          `json:"fire_rating"`
	Details       string          `json:"details"`
	Make          string          `json:"make"`
	PartNo        string          `json:"part_no,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	GodownID      string          `json:"godown_id"`
	GodownName    string          `json:"godown_name,omitempty"`
	CreatedAt     string          `json:"created_at"`
}
