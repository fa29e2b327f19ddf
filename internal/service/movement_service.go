package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/repository"
	"github.com/aashishdubey1/stock-inventory/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// quantityScale: all length arithmetic is rounded to 2 decimal places before
// comparison, so float drift from the caller can never fail an exact check.
const quantityScale = 2

type targetKind int

const (
	targetNone targetKind = iota
	targetDrum
	targetLoose
)

// DispatchTarget identifies exactly one stock entity for a movement. The zero
// value identifies nothing and is rejected with MissingTarget, so the
// "both set" and "neither set" states are unrepresentable.
type DispatchTarget struct {
	kind targetKind
	id   uuid.UUID
}

func DrumTarget(id uuid.UUID) DispatchTarget  { return DispatchTarget{kind: targetDrum, id: id} }
func LooseTarget(id uuid.UUID) DispatchTarget { return DispatchTarget{kind: targetLoose, id: id} }

// MovementService is the stock-movement engine. Every operation performs its
// read-validate-mutate-append sequence inside one storage transaction with the
// stock row locked, so no partial effect is ever observable and concurrent
// movements against the same stock serialize.
type MovementService interface {
	Dispatch(ctx context.Context, userID uuid.UUID, target DispatchTarget, req dto.DispatchRequest) (*model.StockTransaction, error)
	Transfer(ctx context.Context, userID uuid.UUID, target DispatchTarget, req dto.TransferRequest) (*model.StockTransaction, error)
	RecentTransactions(ctx context.Context, filter dto.TransactionFilter) ([]dto.TransactionResponse, error)
}

type movementService struct {
	txRepo     repository.TransactionRepository
	drumRepo   repository.DrumStockRepository
	looseRepo  repository.LooseStockRepository
	godownRepo repository.GodownRepository
	dispatcher *worker.Dispatcher // nil = notifications disabled
	notifyTo   string
}

func NewMovementService(
	txRepo repository.TransactionRepository,
	drumRepo repository.DrumStockRepository,
	looseRepo repository.LooseStockRepository,
	godownRepo repository.GodownRepository,
	dispatcher *worker.Dispatcher,
	notifyTo string,
) MovementService {
	return &movementService{
		txRepo:     txRepo,
		drumRepo:   drumRepo,
		looseRepo:  looseRepo,
		godownRepo: godownRepo,
		dispatcher: dispatcher,
		notifyTo:   notifyTo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

func (s *movementService) Dispatch(ctx context.Context, userID uuid.UUID, target DispatchTarget, req dto.DispatchRequest) (*model.StockTransaction, error) {
	var created *model.StockTransaction

	var err error
	switch target.kind {
	case targetDrum:
		err = runTx(ctx, s.txRepo.DB(), func(tx *gorm.DB) error {
			var txErr error
			created, txErr = s.dispatchDrum(tx, userID, target.id, req)
			return txErr
		})
	case targetLoose:
		err = runTx(ctx, s.txRepo.DB(), func(tx *gorm.DB) error {
			var txErr error
			created, txErr = s.dispatchLoose(tx, userID, target.id, req)
			return txErr
		})
	default:
		return nil, stockErrf(KindMissingTarget, "Target stock (drum or loose) not specified")
	}
	if err != nil {
		return nil, err
	}

	s.notifyDispatch(ctx, created)
	return created, nil
}

func (s *movementService) dispatchDrum(tx *gorm.DB, userID, drumID uuid.UUID, req dto.DispatchRequest) (*model.StockTransaction, error) {
	stock, err := s.drumRepo.FindByIDForUpdateTx(tx, drumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stockErrf(KindStockNotFound, "Cable stock not found")
		}
		return nil, err
	}

	currentQty := stock.PresentQuantity.Round(quantityScale)
	requestedQty := req.Quantity.Round(quantityScale)

	if stock.IsMultiCoil {
		// Whole coils only: the caller states how many coils leave, and the
		// entered meters must agree with the coil-derived meters exactly.
		if req.CoilsDispatched == nil || *req.CoilsDispatched <= 0 {
			return nil, stockErrf(KindCoilCountRequired,
				"This is a multi-coil drum. Please specify the number of coils to dispatch.")
		}
		coils := *req.CoilsDispatched
		if coils > stock.CoilsRemaining {
			return nil, stockErrf(KindInsufficientCoils,
				"Insufficient coils. Available: %d coils, Requested: %d coils",
				stock.CoilsRemaining, coils)
		}
		expectedMeters := stock.QtyPerCoil.Mul(decimal.NewFromInt(int64(coils))).Round(quantityScale)
		if !requestedQty.Equal(expectedMeters) {
			return nil, stockErrf(KindCoilQuantityMismatch,
				"Mismatch: %d coils x %sm/coil = %sm, but you entered %sm. Multi-coil drums can only dispatch full coils.",
				coils, stock.QtyPerCoil.String(), expectedMeters.String(), requestedQty.String())
		}
	} else {
		if requestedQty.GreaterThan(currentQty) {
			return nil, stockErrf(KindInsufficientStock,
				"Insufficient stock. Available: %sm, Requested: %sm",
				currentQty.String(), requestedQty.String())
		}
	}

	balanceAfter := currentQty.Sub(requestedQty).Round(quantityScale)

	updates := map[string]interface{}{"present_quantity": balanceAfter}
	if balanceAfter.IsZero() {
		updates["status"] = model.StatusDepleted
	}
	if stock.IsMultiCoil && req.CoilsDispatched != nil {
		remaining := stock.CoilsRemaining - *req.CoilsDispatched
		if remaining < 0 {
			remaining = 0
		}
		updates["coils_remaining"] = remaining
	}
	if err := s.drumRepo.UpdatesTx(tx, stock.ID, updates); err != nil {
		return nil, err
	}

	entry := &model.StockTransaction{
		DrumStockID:  &stock.ID,
		Type:         model.TxTypeOut,
		Quantity:     requestedQty,
		BalanceAfter: balanceAfter,
		Unit:         model.UnitMeters,

		Size:          stock.Size,
		ConductorType: stock.ConductorType,
		ArmourType:    stock.ArmourType,
		FireRating:    stock.FireRating,
		Details:       stock.Details,
		Make:          stock.Make,
		PartNo:        stock.PartNo,

		DispatchedCompany: req.DispatchedCompany,
		InvoiceNumber:     req.InvoiceNumber,
		DispatchedDate:    dispatchDate(req.InvoiceDate),
		CoilsDispatched:   req.CoilsDispatched,

		FromGodownID: &stock.GodownID,
		UserID:       userID,
	}
	if err := s.txRepo.CreateTx(tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *movementService) dispatchLoose(tx *gorm.DB, userID, looseID uuid.UUID, req dto.DispatchRequest) (*model.StockTransaction, error) {
	stock, err := s.looseRepo.FindByIDForUpdateTx(tx, looseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stockErrf(KindStockNotFound, "Loose length stock not found")
		}
		return nil, err
	}

	currentQty := stock.Quantity.Round(quantityScale)
	requestedQty := req.Quantity.Round(quantityScale)

	if requestedQty.GreaterThan(currentQty) {
		return nil, stockErrf(KindInsufficientStock,
			"Insufficient stock. Available: %s, Requested: %s",
			currentQty.String(), requestedQty.String())
	}

	balanceAfter := currentQty.Sub(requestedQty)

	// Unreachable given the check above; kept as a safety net around future
	// edits to the sufficiency logic.
	if balanceAfter.IsNegative() {
		return nil, stockErrf(KindNegativeBalance,
			"Critical error: balance would be negative. Contact admin.")
	}

	if err := s.looseRepo.UpdatesTx(tx, stock.ID, map[string]interface{}{"quantity": balanceAfter}); err != nil {
		return nil, err
	}

	entry := &model.StockTransaction{
		LooseStockID: &stock.ID,
		Type:         model.TxTypeOut,
		Quantity:     requestedQty,
		BalanceAfter: balanceAfter,
		Unit:         stock.Unit,

		Size:          stock.Size,
		ConductorType: stock.ConductorType,
		ArmourType:    stock.ArmourType,
		FireRating:    stock.FireRating,
		Details:       stock.Details,
		Make:          stock.Make,
		PartNo:        stock.PartNo,

		DispatchedCompany: req.DispatchedCompany,
		InvoiceNumber:     req.InvoiceNumber,
		DispatchedDate:    dispatchDate(req.InvoiceDate),

		FromGodownID: &stock.GodownID,
		UserID:       userID,
	}
	if err := s.txRepo.CreateTx(tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ── Transfer ─────────────────────────────────────────────────────────────────
// Policy: a transfer relocates a WHOLE drum — the drum's godown pointer moves
// and a TRANSFER entry records both godowns. Partial lengths and loose stock
// are rejected outright; a partial length leaving a drum is a dispatch.

func (s *movementService) Transfer(ctx context.Context, userID uuid.UUID, target DispatchTarget, req dto.TransferRequest) (*model.StockTransaction, error) {
	switch target.kind {
	case targetDrum:
		// handled below
	case targetLoose:
		return nil, stockErrf(KindPartialTransfer,
			"Only whole-drum transfers are supported; loose stock cannot be transferred")
	default:
		return nil, stockErrf(KindMissingTarget, "Target stock (drum or loose) not specified")
	}

	toGodownID, err := uuid.Parse(req.ToGodownID)
	if err != nil {
		return nil, fmt.Errorf("invalid to_godown_id: %w", err)
	}
	if _, err := s.godownRepo.FindByID(ctx, toGodownID); err != nil {
		return nil, stockErrf(KindStockNotFound, "Destination godown not found")
	}

	var created *model.StockTransaction
	txErr := runTx(ctx, s.txRepo.DB(), func(tx *gorm.DB) error {
		stock, err := s.drumRepo.FindByIDForUpdateTx(tx, target.id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return stockErrf(KindStockNotFound, "Cable stock not found")
			}
			return err
		}

		presentQty := stock.PresentQuantity.Round(quantityScale)
		requestedQty := req.Quantity.Round(quantityScale)
		if !requestedQty.Equal(presentQty) {
			return stockErrf(KindPartialTransfer,
				"Partial transfer is not supported: drum holds %sm, requested %sm. Transfer the full drum or dispatch instead.",
				presentQty.String(), requestedQty.String())
		}

		fromGodownID := stock.GodownID
		if err := s.drumRepo.UpdatesTx(tx, stock.ID, map[string]interface{}{"godown_id": toGodownID}); err != nil {
			return err
		}

		created = &model.StockTransaction{
			DrumStockID:  &stock.ID,
			Type:         model.TxTypeTransfer,
			Quantity:     presentQty,
			BalanceAfter: presentQty,
			Unit:         model.UnitMeters,

			Size:          stock.Size,
			ConductorType: stock.ConductorType,
			ArmourType:    stock.ArmourType,
			FireRating:    stock.FireRating,
			Details:       stock.Details,
			Make:          stock.Make,
			PartNo:        stock.PartNo,

			DispatchedDate: time.Now(),

			FromGodownID: &fromGodownID,
			ToGodownID:   &toGodownID,
			UserID:       userID,
		}
		return s.txRepo.CreateTx(tx, created)
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// ── Recent transactions ──────────────────────────────────────────────────────

func (s *movementService) RecentTransactions(ctx context.Context, filter dto.TransactionFilter) ([]dto.TransactionResponse, error) {
	transactions, err := s.txRepo.ListRecent(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, *transactionToResponse(&transactions[i]))
	}
	return out, nil
}

func transactionToResponse(t *model.StockTransaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:           t.ID.String(),
		Type:         t.Type,
		Quantity:     t.Quantity,
		BalanceAfter: t.BalanceAfter,
		Unit:         t.Unit,

		Size:          t.Size,
		ConductorType: t.ConductorType,
		ArmourType:    t.ArmourType,
		FireRating:    t.FireRating,
		Details:       t.Details,
		Make:          t.Make,
		PartNo:        t.PartNo,

		DispatchedCompany: t.DispatchedCompany,
		InvoiceNumber:     t.InvoiceNumber,
		CoilsDispatched:   t.CoilsDispatched,

		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if !t.DispatchedDate.IsZero() {
		resp.DispatchedDate = t.DispatchedDate.Format("2006-01-02")
	}
	if t.DrumStockID != nil {
		id := t.DrumStockID.String()
		resp.DrumStockID = &id
	}
	if t.LooseStockID != nil {
		id := t.LooseStockID.String()
		resp.LooseStockID = &id
	}
	if t.FromGodownID != nil {
		id := t.FromGodownID.String()
		resp.FromGodownID = &id
		if t.FromGodown != nil {
			resp.FromGodownName = t.FromGodown.Name
		}
	}
	if t.ToGodownID != nil {
		id := t.ToGodownID.String()
		resp.ToGodownID = &id
		if t.ToGodown != nil {
			resp.ToGodownName = t.ToGodown.Name
		}
	}
	if t.User != nil {
		resp.User = &dto.TransactionUser{
			ID:       t.User.ID.String(),
			Username: t.User.Username,
			Email:    t.User.Email,
		}
	}
	return resp
}

// notifyDispatch enqueues a best-effort summary email. Failures are logged and
// never surfaced — the movement is already committed.
func (s *movementService) notifyDispatch(ctx context.Context, t *model.StockTransaction) {
	if s.dispatcher == nil || s.notifyTo == "" || t == nil {
		return
	}
	body := fmt.Sprintf(
		"Dispatched %s %s of %s %s (%s) to %s.\nInvoice: %s\nBalance after dispatch: %s %s\n",
		t.Quantity.String(), t.Unit, t.Size, t.ConductorType, t.Make,
		t.DispatchedCompany, t.InvoiceNumber, t.BalanceAfter.String(), t.Unit,
	)
	payload := worker.EmailJobPayload{
		ToEmail: s.notifyTo,
		Subject: fmt.Sprintf("Stock dispatched — invoice %s", t.InvoiceNumber),
		Body:    body,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Msg("failed to enqueue dispatch notification")
	}
}

func dispatchDate(invoiceDate *string) time.Time {
	if invoiceDate != nil {
		if d, err := time.Parse("2006-01-02", *invoiceDate); err == nil {
			return d
		}
	}
	return time.Now()
}
