package repository

import (
	"context"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LooseStockRepository interface {
	Create(ctx context.Context, s *model.LooseStock) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LooseStock, error)
	List(ctx context.Context, filter dto.LooseStockFilter) ([]model.LooseStock, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error

	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.LooseStock, error)
	UpdatesTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}

type looseStockRepo struct{ db *gorm.DB }

func NewLooseStockRepository(db *gorm.DB) LooseStockRepository { return &looseStockRepo{db: db} }

func (r *looseStockRepo) Create(ctx context.Context, s *model.LooseStock) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *looseStockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.LooseStock, error) {
	var s model.LooseStock
	err := r.db.WithContext(ctx).First(&s, "id = ? AND is_deleted = ?", id, false).Error
	return &s, err
}

func (r *looseStockRepo) List(ctx context.Context, filter dto.LooseStockFilter) ([]model.LooseStock, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false).Preload("Godown")
	if filter.GodownID != "" {
		q = q.Where("godown_id = ?", filter.GodownID)
	}
	if filter.Size != "" {
		q = q.Where("size ILIKE ?", "%"+filter.Size+"%")
	}
	var stocks []model.LooseStock
	err := q.Order("created_at DESC").Find(&stocks).Error
	return stocks, err
}

func (r *looseStockRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.LooseStock{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *looseStockRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.LooseStock, error) {
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var s model.LooseStock
	err := tx.First(&s, "id = ? AND is_deleted = ?", id, false).Error
	return &s, err
}

func (r *looseStockRepo) UpdatesTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.LooseStock{}).Where("id = ?", id).Updates(fields).Error
}
