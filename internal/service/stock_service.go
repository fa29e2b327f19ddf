package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockService manages stock entities: drum intake (which is itself a ledger
// movement), loose-stock registration, listing, and soft deletion.
type StockService interface {
	CreateDrumStock(ctx context.Context, userID uuid.UUID, req dto.CreateDrumStockRequest) (*model.DrumStock, error)
	ListDrumStocks(ctx context.Context, filter dto.DrumStockFilter) ([]dto.DrumStockResponse, error)
	DeleteDrumStock(ctx context.Context, id uuid.UUID) error

	CreateLooseStock(ctx context.Context, req dto.CreateLooseStockRequest) (*model.LooseStock, error)
	ListLooseStocks(ctx context.Context, filter dto.LooseStockFilter) ([]dto.LooseStockResponse, error)
}

type stockService struct {
	drumRepo  repository.DrumStockRepository
	looseRepo repository.LooseStockRepository
	txRepo    repository.TransactionRepository
	// lowThreshold drives the RUNNING/LOW display split. The movement engine
	// never reads it; only the depletion status is engine-derived.
	lowThreshold decimal.Decimal
}

func NewStockService(
	drumRepo repository.DrumStockRepository,
	looseRepo repository.LooseStockRepository,
	txRepo repository.TransactionRepository,
	lowThresholdMeters float64,
) StockService {
	return &stockService{
		drumRepo:     drumRepo,
		looseRepo:    looseRepo,
		txRepo:       txRepo,
		lowThreshold: decimal.NewFromFloat(lowThresholdMeters),
	}
}

// StatusFor applies the stock-status policy: DEPLETED at exactly zero, LOW at
// or under the threshold, RUNNING otherwise.
func StatusFor(presentQuantity, lowThreshold decimal.Decimal) string {
	switch {
	case presentQuantity.IsZero():
		return model.StatusDepleted
	case presentQuantity.LessThanOrEqual(lowThreshold):
		return model.StatusLow
	default:
		return model.StatusRunning
	}
}

// ── Intake ───────────────────────────────────────────────────────────────────
// Creating a drum IS the IN movement: the stock row and its IN ledger entry
// commit together or not at all.

func (s *stockService) CreateDrumStock(ctx context.Context, userID uuid.UUID, req dto.CreateDrumStockRequest) (*model.DrumStock, error) {
	godownID, err := uuid.Parse(req.GodownID)
	if err != nil {
		return nil, fmt.Errorf("invalid godown_id: %w", err)
	}

	initial := req.InitialQuantity.Round(quantityScale)
	packaging := req.PackagingType
	if packaging == "" {
		packaging = "DRUM"
	}

	stock := &model.DrumStock{
		DrumNumber:    req.DrumNumber,
		Size:          req.Size,
		ConductorType: req.ConductorType,
		ArmourType:    req.ArmourType,
		FireRating:    req.FireRating,
		Details:       req.Details,
		Make:          req.Make,
		PartNo:        req.PartNo,
		PackagingType: packaging,

		InitialQuantity: initial,
		PresentQuantity: initial,
		Status:          model.StatusRunning,

		GodownID: godownID,
		Site:     req.Site,
		Location: req.Location,
	}
	if req.IsMultiCoil {
		stock.IsMultiCoil = true
		stock.QtyPerCoil = req.QtyPerCoil.Round(quantityScale)
		stock.TotalCoils = req.TotalCoils
		stock.CoilsRemaining = req.TotalCoils
	}

	txErr := runTx(ctx, s.drumRepo.DB(), func(tx *gorm.DB) error {
		// Duplicate check inside the transaction, so the precondition and the
		// create share one snapshot. The unique index on drum_number backstops
		// any race that slips past it.
		_, err := s.drumRepo.FindByDrumNumberTx(tx, req.DrumNumber)
		if err == nil {
			return stockErrf(KindDuplicateIdentity, "Drum %s already exists", req.DrumNumber)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.drumRepo.CreateTx(tx, stock); err != nil {
			return err
		}
		entry := &model.StockTransaction{
			DrumStockID:  &stock.ID,
			Type:         model.TxTypeIn,
			Quantity:     initial,
			BalanceAfter: initial,
			Unit:         model.UnitMeters,

			Size:          stock.Size,
			ConductorType: stock.ConductorType,
			ArmourType:    stock.ArmourType,
			FireRating:    stock.FireRating,
			Details:       stock.Details,
			Make:          stock.Make,
			PartNo:        stock.PartNo,

			DispatchedDate: time.Now(),
			ToGodownID:     &godownID,
			UserID:         userID,
		}
		return s.txRepo.CreateTx(tx, entry)
	})
	if txErr != nil {
		return nil, txErr
	}
	return stock, nil
}

func (s *stockService) ListDrumStocks(ctx context.Context, filter dto.DrumStockFilter) ([]dto.DrumStockResponse, error) {
	stocks, err := s.drumRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DrumStockResponse, 0, len(stocks))
	for i := range stocks {
		out = append(out, *s.drumToResponse(&stocks[i]))
	}
	return out, nil
}

func (s *stockService) DeleteDrumStock(ctx context.Context, id uuid.UUID) error {
	if _, err := s.drumRepo.FindByID(ctx, id); err != nil {
		return stockErrf(KindStockNotFound, "Cable stock not found")
	}
	return s.drumRepo.SoftDelete(ctx, id)
}

// ── Loose stock ──────────────────────────────────────────────────────────────
// Plain creation — the IN movement applies to drums only.

func (s *stockService) CreateLooseStock(ctx context.Context, req dto.CreateLooseStockRequest) (*model.LooseStock, error) {
	godownID, err := uuid.Parse(req.GodownID)
	if err != nil {
		return nil, fmt.Errorf("invalid godown_id: %w", err)
	}

	stock := &model.LooseStock{
		Size:          req.Size,
		ConductorType: req.ConductorType,
		ArmourType:    req.ArmourType,
		FireRating:    req.FireRating,
		Details:       req.Details,
		Make:          req.Make,
		PartNo:        req.PartNo,

		Quantity: req.Quantity.Round(quantityScale),
		Unit:     req.Unit,
		GodownID: godownID,
	}
	if err := s.looseRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *stockService) ListLooseStocks(ctx context.Context, filter dto.LooseStockFilter) ([]dto.LooseStockResponse, error) {
	stocks, err := s.looseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LooseStockResponse, 0, len(stocks))
	for i := range stocks {
		st := &stocks[i]
		resp := dto.LooseStockResponse{
			ID:            st.ID.String(),
			Size:          st.Size,
			ConductorType: st.ConductorType,
			ArmourType:    st.ArmourType,
			FireRating:    st.FireRating,
			Details:       st.Details,
			Make:          st.Make,
			PartNo:        st.PartNo,
			Quantity:      st.Quantity,
			Unit:          st.Unit,
			GodownID:      st.GodownID.String(),
			CreatedAt:     st.CreatedAt.Format(time.RFC3339),
		}
		if st.Godown != nil {
			resp.GodownName = st.Godown.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *stockService) drumToResponse(st *model.DrumStock) *dto.DrumStockResponse {
	resp := &dto.DrumStockResponse{
		ID:            st.ID.String(),
		DrumNumber:    st.DrumNumber,
		Size:          st.Size,
		ConductorType: st.ConductorType,
		ArmourType:    st.ArmourType,
		FireRating:    st.FireRating,
		Details:       st.Details,
		Make:          st.Make,
		PartNo:        st.PartNo,
		PackagingType: st.PackagingType,

		InitialQuantity: st.InitialQuantity,
		PresentQuantity: st.PresentQuantity,
		Unit:            model.UnitMeters,
		Status:          StatusFor(st.PresentQuantity, s.lowThreshold),

		GodownID: st.GodownID.String(),
		Site:     st.Site,
		Location: st.Location,

		IsMultiCoil:    st.IsMultiCoil,
		QtyPerCoil:     st.QtyPerCoil,
		TotalCoils:     st.TotalCoils,
		CoilsRemaining: st.CoilsRemaining,

		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
	if st.Godown != nil {
		resp.GodownName = st.Godown.Name
	}
	return resp
}
