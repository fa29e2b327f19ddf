package repository

import (
	"context"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository is append-only by design: ledger entries are never
// updated or deleted once written.
type TransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.StockTransaction) error
	// ListRecent returns entries newest first, joined with the acting user and
	// source/destination godowns.
	ListRecent(ctx context.Context, filter dto.TransactionFilter) ([]model.StockTransaction, error)

	// DB exposes the underlying *gorm.DB so the movement engine can open
	// transactions.
	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.StockTransaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) ListRecent(ctx context.Context, filter dto.TransactionFilter) ([]model.StockTransaction, error) {
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	q := r.db.WithContext(ctx).Model(&model.StockTransaction{}).
		Preload("User").
		Preload("FromGodown").
		Preload("ToGodown")

	if filter.GodownID != "" {
		q = q.Where("from_godown_id = ?", filter.GodownID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var transactions []model.StockTransaction
	err := q.Order("created_at DESC").Limit(limit).Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }
