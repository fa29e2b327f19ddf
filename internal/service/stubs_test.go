package service

import (
	"context"
	"strings"
	"time"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which makes runTx call the
// transaction body directly, so services can be unit-tested without a store.

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ─── drum stock ──────────────────────────────────────────────────────────────

type stubDrumRepo struct {
	stocks map[uuid.UUID]*model.DrumStock
	// findErr, when set, is returned by lookups to simulate a storage failure.
	findErr error
}

var _ repository.DrumStockRepository = (*stubDrumRepo)(nil)

func newStubDrumRepo() *stubDrumRepo {
	return &stubDrumRepo{stocks: map[uuid.UUID]*model.DrumStock{}}
}

func (r *stubDrumRepo) add(s *model.DrumStock) *model.DrumStock {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.stocks[s.ID] = s
	return s
}

func (r *stubDrumRepo) find(id uuid.UUID) (*model.DrumStock, error) {
	s, ok := r.stocks[id]
	if !ok || s.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubDrumRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DrumStock, error) {
	return r.find(id)
}

func (r *stubDrumRepo) FindByDrumNumberTx(_ *gorm.DB, drumNumber string) (*model.DrumStock, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, s := range r.stocks {
		if !s.IsDeleted && s.DrumNumber == drumNumber {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDrumRepo) List(_ context.Context, filter dto.DrumStockFilter) ([]model.DrumStock, error) {
	var out []model.DrumStock
	for _, s := range r.stocks {
		if s.IsDeleted {
			continue
		}
		if filter.GodownID != "" && s.GodownID.String() != filter.GodownID {
			continue
		}
		if filter.DrumNumber != "" && !strings.Contains(s.DrumNumber, filter.DrumNumber) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubDrumRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, err := r.find(id)
	if err != nil {
		return err
	}
	s.IsDeleted = true
	return nil
}

func (r *stubDrumRepo) CreateTx(_ *gorm.DB, s *model.DrumStock) error {
	r.add(s)
	return nil
}

func (r *stubDrumRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.DrumStock, error) {
	return r.find(id)
}

func (r *stubDrumRepo) UpdatesTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	s, err := r.find(id)
	if err != nil {
		return err
	}
	if v, ok := fields["present_quantity"]; ok {
		s.PresentQuantity = v.(decimal.Decimal)
	}
	if v, ok := fields["status"]; ok {
		s.Status = v.(string)
	}
	if v, ok := fields["coils_remaining"]; ok {
		s.CoilsRemaining = v.(int)
	}
	if v, ok := fields["godown_id"]; ok {
		s.GodownID = v.(uuid.UUID)
	}
	return nil
}

func (r *stubDrumRepo) DB() *gorm.DB { return nil }

// ─── loose stock ─────────────────────────────────────────────────────────────

type stubLooseRepo struct {
	stocks map[uuid.UUID]*model.LooseStock
}

var _ repository.LooseStockRepository = (*stubLooseRepo)(nil)

func newStubLooseRepo() *stubLooseRepo {
	return &stubLooseRepo{stocks: map[uuid.UUID]*model.LooseStock{}}
}

func (r *stubLooseRepo) add(s *model.LooseStock) *model.LooseStock {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.stocks[s.ID] = s
	return s
}

func (r *stubLooseRepo) find(id uuid.UUID) (*model.LooseStock, error) {
	s, ok := r.stocks[id]
	if !ok || s.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubLooseRepo) Create(_ context.Context, s *model.LooseStock) error {
	r.add(s)
	return nil
}

func (r *stubLooseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.LooseStock, error) {
	return r.find(id)
}

func (r *stubLooseRepo) List(_ context.Context, filter dto.LooseStockFilter) ([]model.LooseStock, error) {
	var out []model.LooseStock
	for _, s := range r.stocks {
		if s.IsDeleted {
			continue
		}
		if filter.GodownID != "" && s.GodownID.String() != filter.GodownID {
			continue
		}
		if filter.Size != "" && !strings.Contains(s.Size, filter.Size) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubLooseRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, err := r.find(id)
	if err != nil {
		return err
	}
	s.IsDeleted = true
	return nil
}

func (r *stubLooseRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.LooseStock, error) {
	return r.find(id)
}

func (r *stubLooseRepo) UpdatesTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	s, err := r.find(id)
	if err != nil {
		return err
	}
	if v, ok := fields["quantity"]; ok {
		s.Quantity = v.(decimal.Decimal)
	}
	return nil
}

// ─── transactions ────────────────────────────────────────────────────────────

type stubTxRepo struct {
	entries []*model.StockTransaction
}

var _ repository.TransactionRepository = (*stubTxRepo)(nil)

func (r *stubTxRepo) CreateTx(_ *gorm.DB, t *model.StockTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, t)
	return nil
}

func (r *stubTxRepo) ListRecent(_ context.Context, filter dto.TransactionFilter) ([]model.StockTransaction, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	var out []model.StockTransaction
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		t := r.entries[i]
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.GodownID != "" && (t.FromGodownID == nil || t.FromGodownID.String() != filter.GodownID) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTxRepo) DB() *gorm.DB { return nil }

// ─── godowns ─────────────────────────────────────────────────────────────────

type stubGodownRepo struct {
	godowns map[uuid.UUID]*model.Godown
}

var _ repository.GodownRepository = (*stubGodownRepo)(nil)

func newStubGodownRepo() *stubGodownRepo {
	return &stubGodownRepo{godowns: map[uuid.UUID]*model.Godown{}}
}

func (r *stubGodownRepo) add(name string) *model.Godown {
	g := &model.Godown{ID: uuid.New(), Name: name}
	r.godowns[g.ID] = g
	return g
}

func (r *stubGodownRepo) Create(_ context.Context, g *model.Godown) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.godowns[g.ID] = g
	return nil
}

func (r *stubGodownRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Godown, error) {
	g, ok := r.godowns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubGodownRepo) List(_ context.Context) ([]model.Godown, error) {
	var out []model.Godown
	for _, g := range r.godowns {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGodownRepo) Update(_ context.Context, g *model.Godown) error {
	if _, ok := r.godowns[g.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.godowns[g.ID] = g
	return nil
}

func (r *stubGodownRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.godowns[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.godowns, id)
	return nil
}

// ─── users ───────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *stubUserRepo) add(u *model.User) *model.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.add(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
