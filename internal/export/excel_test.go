package export

import (
	"testing"

	"inventory-backend/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []ledger.Entry {
	return []ledger.Entry{
		{
			SupplierID:          1,
			PartID:              1,
			PartNumber:          "BRK-100",
			PartName:            "Brake Pad",
			RunningNumber:       "RN-01",
			DCNumber:            "DC-001",
			TotalSentToSupplier: 100,
			TotalSentToCompany:  40,
			AvailableQuantity:   60,
			SupplierName:        "Acme Traders",
			CompanyName:         "Xylo Motors",
		},
		{
			SupplierID:          1,
			PartID:              2,
			PartNumber:          "FLT-200",
			PartName:            "Oil Filter",
			RunningNumber:       "RN-02",
			DCNumber:            "DC-002",
			TotalSentToSupplier: 25,
			TotalSentToCompany:  0,
			AvailableQuantity:   25,
			SupplierName:        "Acme Traders",
			CompanyName:         "",
		},
	}
}

func TestStockLedgerWorkbook(t *testing.T) {
	buf, err := StockLedgerWorkbook(exportFixture(), "Stock Ledger")
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Stock Ledger")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, ledgerColumns, rows[0])
	assert.Equal(t, []string{"BRK-100", "Brake Pad", "RN-01", "DC-001", "100", "40", "60", "Acme Traders", "Xylo Motors"}, rows[1])
	assert.Equal(t, "-", rows[2][8], "missing company renders as a dash")
}

func TestStockLedgerWorkbookEmpty(t *testing.T) {
	buf, err := StockLedgerWorkbook(nil, "Stock Ledger")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Stock Ledger")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestStockLedgerReport(t *testing.T) {
	data, err := StockLedgerReport(exportFixture(), "Stock Ledger Report")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestStockLedgerReportEmpty(t *testing.T) {
	data, err := StockLedgerReport(nil, "Stock Ledger Report")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
