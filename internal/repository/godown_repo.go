package repository

import (
	"context"

	"github.com/aashishdubey1/stock-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GodownRepository interface {
	Create(ctx context.Context, g *model.Godown) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Godown, error)
	List(ctx context.Context) ([]model.Godown, error)
	Update(ctx context.Context, g *model.Godown) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type godownRepo struct{ db *gorm.DB }

func NewGodownRepository(db *gorm.DB) GodownRepository { return &godownRepo{db: db} }

func (r *godownRepo) Create(ctx context.Context, g *model.Godown) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *godownRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Godown, error) {
	var g model.Godown
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return &g, err
}

func (r *godownRepo) List(ctx context.Context) ([]model.Godown, error) {
	var godowns []model.Godown
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&godowns).Error
	return godowns, err
}

func (r *godownRepo) Update(ctx context.Context, g *model.Godown) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *godownRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Godown{}, "id = ?", id).Error
}
