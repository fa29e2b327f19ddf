package repository

import (
	"context"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DrumStockRepository defines data access for serialized cable drums.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing via in-memory stubs.
type DrumStockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.DrumStock, error)
	List(ctx context.Context, filter dto.DrumStockFilter) ([]model.DrumStock, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Used inside movement transactions — callers must pass the tx instance.
	CreateTx(tx *gorm.DB, s *model.DrumStock) error
	// FindByDrumNumberTx matches exactly (case-sensitive) among non-deleted
	// drums, inside the caller's transaction.
	FindByDrumNumberTx(tx *gorm.DB, drumNumber string) (*model.DrumStock, error)
	// FindByIDForUpdateTx loads the drum under a SELECT ... FOR UPDATE row lock
	// so concurrent movements against the same drum serialize.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.DrumStock, error)
	UpdatesTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type drumStockRepo struct{ db *gorm.DB }

func NewDrumStockRepository(db *gorm.DB) DrumStockRepository { return &drumStockRepo{db: db} }

func (r *drumStockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DrumStock, error) {
	var s model.DrumStock
	err := r.db.WithContext(ctx).First(&s, "id = ? AND is_deleted = ?", id, false).Error
	return &s, err
}

func (r *drumStockRepo) List(ctx context.Context, filter dto.DrumStockFilter) ([]model.DrumStock, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false).Preload("Godown")
	if filter.GodownID != "" {
		q = q.Where("godown_id = ?", filter.GodownID)
	}
	if filter.DrumNumber != "" {
		q = q.Where("drum_number ILIKE ?", "%"+filter.DrumNumber+"%")
	}
	var stocks []model.DrumStock
	err := q.Order("created_at DESC").Find(&stocks).Error
	return stocks, err
}

func (r *drumStockRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.DrumStock{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *drumStockRepo) CreateTx(tx *gorm.DB, s *model.DrumStock) error {
	return tx.Create(s).Error
}

func (r *drumStockRepo) FindByDrumNumberTx(tx *gorm.DB, drumNumber string) (*model.DrumStock, error) {
	var s model.DrumStock
	err := tx.Where("drum_number = ? AND is_deleted = ?", drumNumber, false).
		First(&s).Error
	return &s, err
}

func (r *drumStockRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.DrumStock, error) {
	// SQLite (test databases) has a single writer and rejects FOR UPDATE.
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var s model.DrumStock
	err := tx.First(&s, "id = ? AND is_deleted = ?", id, false).Error
	return &s, err
}

func (r *drumStockRepo) UpdatesTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.DrumStock{}).Where("id = ?", id).Updates(fields).Error
}

func (r *drumStockRepo) DB() *gorm.DB { return r.db }
