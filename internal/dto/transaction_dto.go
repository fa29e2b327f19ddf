package dto

import "github.com/shopspring/decimal"

// DispatchRequest is the body of POST /v1/transactions/out. Exactly one of
// DrumStockID / LooseStockID must be set; the handler turns the pair into a
// tagged service.DispatchTarget before calling the engine.
type DispatchRequest struct {
	DrumStockID  *string `json:"drum_stock_id"  validate:"omitempty,uuid"`
	LooseStockID *string `json:"loose_stock_id" validate:"omitempty,uuid"`

	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`

	DispatchedCompany string  `json:"dispatched_company" validate:"required,min=1"`
	InvoiceNumber     string  `json:"invoice_number"     validate:"required,min=1"`
	InvoiceDate       *string `json:"invoice_date"       validate:"omitempty,datetime=2006-01-02"`
	CoilsDispatched   *int    `json:"coils_dispatched"   validate:"omitempty,min=1"`
}

// TransferRequest relocates a whole drum to another godown. The quantity must
// equal the drum's full present quantity — partial transfers are rejected.
type TransferRequest struct {
	DrumStockID  *string `json:"drum_stock_id"  validate:"omitempty,uuid"`
	LooseStockID *string `json:"loose_stock_id" validate:"omitempty,uuid"`

	Quantity   decimal.Decimal `json:"quantity"     validate:"required,gt=0"`
	ToGodownID string          `json:"to_godown_id" validate:"required,uuid"`
}

// TransactionFilter is bound from the query string of GET /v1/transactions.
type TransactionFilter struct {
	Limit    int    `form:"limit,default=10" validate:"min=1,max=200"`
	GodownID string `form:"godown_id"        validate:"omitempty,uuid"`
	Type     string `form:"type"             validate:"omitempty,oneof=IN OUT TRANSFER"`
}

type TransactionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	DrumStockID  *string         `json:"drum_stock_id,omitempty"`
	LooseStockID *string         `json:"loose_stock_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Unit         string          `json:"unit"`

	Size          string `json:"size"`
	ConductorType string `json:"conductor_type"`
	ArmourType    string `json:"armour_type"`
	FireRating    string `json:"fire_rating"`
	Details       string `json:"details,omitempty"`
	Make          string `json:"make"`
	PartNo        string `json:"part_no,omitempty"`

	DispatchedCompany string `json:"dispatched_company,omitempty"`
	InvoiceNumber     string `json:"invoice_number,omitempty"`
	DispatchedDate    string `json:"dispatched_date,omitempty"`
	CoilsDispatched   *int   `json:"coils_dispatched,omitempty"`

	FromGodownID   *string `json:"from_godown_id,omitempty"`
	FromGodownName string  `json:"from_godown_name,omitempty"`
	ToGodownID     *string `json:"to_godown_id,omitempty"`
	ToGodownName   string  `json:"to_godown_name,omitempty"`

	User      *TransactionUser `json:"user,omitempty"`
	CreatedAt string           `json:"created_at"`
}
