package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockFixture struct {
	drums *stubDrumRepo
	loose *stubLooseRepo
	txs   *stubTxRepo
	svc   StockService
}

func newStockFixture(lowThreshold float64) *stockFixture {
	f := &stockFixture{
		drums: newStubDrumRepo(),
		loose: newStubLooseRepo(),
		txs:   &stubTxRepo{},
	}
	f.svc = NewStockService(f.drums, f.loose, f.txs, lowThreshold)
	return f
}

func createDrumReq(godownID uuid.UUID) dto.CreateDrumStockRequest {
	return dto.CreateDrumStockRequest{
		DrumNumber:      "DRM-2001",
		Size:            "3C x 95 sqmm",
		ConductorType:   "Aluminium",
		ArmourType:      "Armoured",
		FireRating:      "FRLS",
		Details:         "11kV XLPE",
		Make:            "Polycab",
		InitialQuantity: dec("500"),
		GodownID:        godownID.String(),
		Site:            "Plant 2",
	}
}

func TestCreateDrumStockWritesIntakeEntry(t *testing.T) {
	f := newStockFixture(50)
	godownID := uuid.New()
	userID := uuid.New()

	stock, err := f.svc.CreateDrumStock(context.Background(), userID, createDrumReq(godownID))
	require.NoError(t, err)

	assert.True(t, stock.InitialQuantity.Equal(dec("500")))
	assert.True(t, stock.PresentQuantity.Equal(dec("500")))
	assert.Equal(t, model.StatusRunning, stock.Status)
	assert.Equal(t, "DRUM", stock.PackagingType)
	assert.Equal(t, godownID, stock.GodownID)

	// the stock row and its IN entry are one operation
	require.Len(t, f.txs.entries, 1)
	entry := f.txs.entries[0]
	assert.Equal(t, model.TxTypeIn, entry.Type)
	assert.True(t, entry.Quantity.Equal(dec("500")))
	assert.True(t, entry.BalanceAfter.Equal(dec("500")))
	assert.Equal(t, model.UnitMeters, entry.Unit)
	require.NotNil(t, entry.DrumStockID)
	assert.Equal(t, stock.ID, *entry.DrumStockID)
	require.NotNil(t, entry.ToGodownID)
	assert.Equal(t, godownID, *entry.ToGodownID)
	assert.Nil(t, entry.FromGodownID)
	assert.Equal(t, userID, entry.UserID)
}

func TestCreateDrumStockDuplicateNumber(t *testing.T) {
	f := newStockFixture(50)
	godownID := uuid.New()

	_, err := f.svc.CreateDrumStock(context.Background(), uuid.New(), createDrumReq(godownID))
	require.NoError(t, err)

	_, err = f.svc.CreateDrumStock(context.Background(), uuid.New(), createDrumReq(godownID))
	require.Error(t, err)
	assert.Equal(t, KindDuplicateIdentity, KindOf(err))
	assert.Contains(t, err.Error(), "DRM-2001")

	// only the first intake reached the ledger
	assert.Len(t, f.txs.entries, 1)
}

func TestCreateDrumStockStorageFailureNotSwallowed(t *testing.T) {
	f := newStockFixture(50)
	f.drums.findErr = errors.New("connection refused")

	// a failed duplicate lookup must abort the intake, not pass as "no duplicate"
	_, err := f.svc.CreateDrumStock(context.Background(), uuid.New(), createDrumReq(uuid.New()))
	require.Error(t, err)
	assert.NotEqual(t, KindDuplicateIdentity, KindOf(err))
	assert.Empty(t, f.drums.stocks)
	assert.Empty(t, f.txs.entries)
}

func TestCreateDrumStockMultiCoil(t *testing.T) {
	f := newStockFixture(50)
	req := createDrumReq(uuid.New())
	req.IsMultiCoil = true
	req.QtyPerCoil = dec("50")
	req.TotalCoils = 10

	stock, err := f.svc.CreateDrumStock(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.True(t, stock.IsMultiCoil)
	assert.True(t, stock.QtyPerCoil.Equal(dec("50")))
	assert.Equal(t, 10, stock.TotalCoils)
	assert.Equal(t, 10, stock.CoilsRemaining)
}

func TestStatusFor(t *testing.T) {
	threshold := dec("50")

	cases := []struct {
		qty  string
		want string
	}{
		{"0", model.StatusDepleted},
		{"0.00", model.StatusDepleted},
		{"1", model.StatusLow},
		{"50", model.StatusLow},
		{"50.01", model.StatusRunning},
		{"500", model.StatusRunning},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(dec(tc.qty), threshold), "qty %s", tc.qty)
	}
}

func TestListDrumStocksAppliesStatusPolicy(t *testing.T) {
	f := newStockFixture(50)
	godownID := uuid.New()

	low := testDrum(godownID, "40")
	low.DrumNumber = "DRM-LOW"
	f.drums.add(low)

	out, err := f.svc.ListDrumStocks(context.Background(), dto.DrumStockFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.StatusLow, out[0].Status)
	assert.Equal(t, model.UnitMeters, out[0].Unit)
}

func TestDeleteDrumStock(t *testing.T) {
	f := newStockFixture(50)
	drum := f.drums.add(testDrum(uuid.New(), "500"))

	require.NoError(t, f.svc.DeleteDrumStock(context.Background(), drum.ID))
	assert.True(t, drum.IsDeleted)

	err := f.svc.DeleteDrumStock(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindStockNotFound, KindOf(err))
}

func TestCreateLooseStockNoLedgerEntry(t *testing.T) {
	f := newStockFixture(50)
	godownID := uuid.New()

	stock, err := f.svc.CreateLooseStock(context.Background(), dto.CreateLooseStockRequest{
		Size:          "1C x 300 sqmm",
		ConductorType: "Copper",
		ArmourType:    "Unarmoured",
		FireRating:    "FR",
		Details:       "LT flexible",
		Make:          "Havells",
		Quantity:      decimal.RequireFromString("120.5"),
		Unit:          "Kg",
		GodownID:      godownID.String(),
	})
	require.NoError(t, err)

	assert.True(t, stock.Quantity.Equal(dec("120.5")))
	assert.Equal(t, "Kg", stock.Unit)
	assert.Equal(t, godownID, stock.GodownID)
	assert.Empty(t, f.txs.entries)
}

func TestCreateDrumStockInvalidGodownID(t *testing.T) {
	f := newStockFixture(50)
	req := createDrumReq(uuid.New())
	req.GodownID = "not-a-uuid"

	_, err := f.svc.CreateDrumStock(context.Background(), uuid.New(), req)
	require.Error(t, err)
}
