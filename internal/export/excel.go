package export

import (
	"bytes"

	"inventory-backend/internal/ledger"

	"github.com/xuri/excelize/v2"
)

var ledgerColumns = []string{
	"Part Number",
	"Part Name",
	"Running Number",
	"DC Number",
	"Total Sent to Supplier",
	"Total Sent to Company",
	"Available Quantity",
	"Supplier",
	"Company",
}

// StockLedgerWorkbook renders the entries as a single-sheet xlsx workbook.
func StockLedgerWorkbook(entries []ledger.Entry, sheetName string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(ledgerColumns))
	for i, col := range ledgerColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, e := range entries {
		company := e.CompanyName
		if company == "" {
			company = "-"
		}
		values := []interface{}{
			e.PartNumber,
			e.PartName,
			e.RunningNumber,
			e.DCNumber,
			e.TotalSentToSupplier,
			e.TotalSentToCompany,
			e.AvailableQuantity,
			e.SupplierName,
			company,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
		row++
	}

	return f.WriteToBuffer()
}
