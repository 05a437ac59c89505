package ledger

import (
	"testing"
	"time"

	"inventory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTime() time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func testSnapshot() *Snapshot {
	t0 := baseTime()
	return &Snapshot{
		Parts: []models.Part{
			{ID: 1, PartNumber: "BRK-100", PartName: "Brake Pad", RunningNumber: "RN-01"},
			{ID: 2, PartNumber: "FLT-200", PartName: "Oil Filter", RunningNumber: "RN-02"},
		},
		Suppliers: []models.Supplier{
			{ID: 1, SupplierCode: "SUP-A", Name: "Acme Traders"},
			{ID: 2, SupplierCode: "SUP-B", Name: "Bolt Industries"},
		},
		Companies: []models.Company{
			{ID: 1, CompanyCode: "CMP-X", CompanyName: "Xylo Motors", SupplierID: 1},
		},
		Shipments: []models.WarehouseShipment{
			{ID: 1, Date: t0, SupplierID: 1, PartID: 1, DCNumber: "DC-001", SendQuantity: 100, CreatedAt: t0},
		},
	}
}

func TestBuildReceiptOnly(t *testing.T) {
	snap := testSnapshot()

	entries, warnings := Build(snap)
	require.Len(t, entries, 1)
	assert.Empty(t, warnings)

	e := entries[0]
	assert.Equal(t, "BRK-100", e.PartNumber)
	assert.Equal(t, "Brake Pad", e.PartName)
	assert.Equal(t, "DC-001", e.DCNumber)
	assert.Equal(t, "Acme Traders", e.SupplierName)
	assert.Equal(t, 100, e.TotalSentToSupplier)
	assert.Equal(t, 0, e.TotalSentToCompany)
	assert.Equal(t, 100, e.AvailableQuantity)
	assert.Empty(t, e.CompanyName)
}

func TestBuildDispatchReducesAvailability(t *testing.T) {
	snap := testSnapshot()
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 1, Date: baseTime().AddDate(0, 0, 1), CompanyID: 1, PartID: 1, SupplierID: 1, SendQuantity: 40, CreatedAt: baseTime().Add(time.Hour)},
	}

	entries, warnings := Build(snap)
	require.Len(t, entries, 1)
	assert.Empty(t, warnings)

	e := entries[0]
	assert.Equal(t, 100, e.TotalSentToSupplier)
	assert.Equal(t, 40, e.TotalSentToCompany)
	assert.Equal(t, 60, e.AvailableQuantity)
	assert.Equal(t, "Xylo Motors", e.CompanyName)
}

func TestBuildAvailabilityCanGoNegative(t *testing.T) {
	snap := testSnapshot()
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 1, Date: baseTime(), CompanyID: 1, PartID: 1, SupplierID: 1, SendQuantity: 80, CreatedAt: baseTime().Add(time.Hour)},
		{ID: 2, Date: baseTime(), CompanyID: 1, PartID: 1, SupplierID: 1, SendQuantity: 50, CreatedAt: baseTime().Add(2 * time.Hour)},
	}

	entries, _ := Build(snap)
	require.Len(t, entries, 1)
	assert.Equal(t, -30, entries[0].AvailableQuantity)
}

func TestBuildDropsShipmentWithUnresolvedSupplier(t *testing.T) {
	snap := testSnapshot()
	snap.Shipments = append(snap.Shipments, models.WarehouseShipment{
		ID: 2, Date: baseTime(), SupplierID: 99, PartID: 1, DCNumber: "DC-002", SendQuantity: 30, CreatedAt: baseTime(),
	})

	entries, warnings := Build(snap)
	require.Len(t, entries, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "warehouse shipment 2")
	assert.Equal(t, 100, entries[0].TotalSentToSupplier)
}

func TestBuildDropsDispatchWithUnresolvedCompany(t *testing.T) {
	snap := testSnapshot()
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 1, Date: baseTime(), CompanyID: 42, PartID: 1, SupplierID: 1, SendQuantity: 10, CreatedAt: baseTime()},
	}

	entries, warnings := Build(snap)
	require.Len(t, entries, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unresolved company 42")
	assert.Equal(t, 0, entries[0].TotalSentToCompany)
	assert.Equal(t, 100, entries[0].AvailableQuantity)
}

func TestBuildDropsOrphanDispatch(t *testing.T) {
	// Dispatch against a (supplier, part) pair with no receipt row.
	snap := testSnapshot()
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 1, Date: baseTime(), CompanyID: 1, PartID: 2, SupplierID: 1, SendQuantity: 5, CreatedAt: baseTime()},
	}

	entries, warnings := Build(snap)
	require.Len(t, entries, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no warehouse shipment")
	assert.Equal(t, uint(1), entries[0].PartID)
}

func TestBuildDCNumberLastCreatedWins(t *testing.T) {
	snap := testSnapshot()
	// Newer row listed first: store order must not decide the display value.
	snap.Shipments = []models.WarehouseShipment{
		{ID: 2, Date: baseTime().AddDate(0, 0, 2), SupplierID: 1, PartID: 1, DCNumber: "DC-NEW", SendQuantity: 20, CreatedAt: baseTime().Add(time.Hour)},
		{ID: 1, Date: baseTime(), SupplierID: 1, PartID: 1, DCNumber: "DC-OLD", SendQuantity: 100, CreatedAt: baseTime()},
	}

	entries, _ := Build(snap)
	require.Len(t, entries, 1)
	assert.Equal(t, "DC-NEW", entries[0].DCNumber)
	assert.Equal(t, 120, entries[0].TotalSentToSupplier)
}

func TestBuildCompanyNameLastCreatedWins(t *testing.T) {
	snap := testSnapshot()
	snap.Companies = append(snap.Companies, models.Company{
		ID: 2, CompanyCode: "CMP-Y", CompanyName: "Yonder Gears", SupplierID: 1,
	})
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 2, Date: baseTime(), CompanyID: 2, PartID: 1, SupplierID: 1, SendQuantity: 10, CreatedAt: baseTime().Add(2 * time.Hour)},
		{ID: 1, Date: baseTime(), CompanyID: 1, PartID: 1, SupplierID: 1, SendQuantity: 10, CreatedAt: baseTime().Add(time.Hour)},
	}

	entries, _ := Build(snap)
	require.Len(t, entries, 1)
	assert.Equal(t, "Yonder Gears", entries[0].CompanyName)
	assert.Equal(t, 20, entries[0].TotalSentToCompany)
}

func TestBuildOutputSortedByPartThenSupplier(t *testing.T) {
	snap := testSnapshot()
	snap.Shipments = append(snap.Shipments,
		models.WarehouseShipment{ID: 2, Date: baseTime(), SupplierID: 2, PartID: 1, DCNumber: "DC-003", SendQuantity: 10, CreatedAt: baseTime()},
		models.WarehouseShipment{ID: 3, Date: baseTime(), SupplierID: 1, PartID: 2, DCNumber: "DC-004", SendQuantity: 10, CreatedAt: baseTime()},
	)

	entries, _ := Build(snap)
	require.Len(t, entries, 3)
	assert.Equal(t, "BRK-100", entries[0].PartNumber)
	assert.Equal(t, "Acme Traders", entries[0].SupplierName)
	assert.Equal(t, "BRK-100", entries[1].PartNumber)
	assert.Equal(t, "Bolt Industries", entries[1].SupplierName)
	assert.Equal(t, "FLT-200", entries[2].PartNumber)
}

func TestSnapshotAvailable(t *testing.T) {
	snap := testSnapshot()
	snap.Dispatches = []models.CompanyDispatch{
		{ID: 1, Date: baseTime(), CompanyID: 1, PartID: 1, SupplierID: 1, SendQuantity: 40, CreatedAt: baseTime()},
	}

	assert.Equal(t, 60, snap.Available(1, 1))
	assert.Equal(t, 0, snap.Available(2, 1), "pair with no transactions")
	assert.Equal(t, 0, snap.Available(1, 2))
}
