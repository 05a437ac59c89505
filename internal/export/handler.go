package export

import (
	"inventory-backend/internal/database"
	"inventory-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func filteredEntries(c *fiber.Ctx) ([]ledger.Entry, error) {
	snap, err := ledger.Load(database.DB)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load stock data")
	}

	entries, warnings := ledger.Build(snap)
	if len(warnings) > 0 {
		zap.L().Warn("stock ledger dropped transactions during export",
			zap.Int("count", len(warnings)))
	}

	filter := ledger.FilterOptions{
		Supplier: c.Query("supplier"),
		Company:  c.Query("company"),
		Part:     c.Query("part"),
		DCNumber: c.Query("dc_number"),
	}
	return filter.Apply(entries), nil
}

// GET /api/stock-ledger/export/excel
func StockLedgerExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := filteredEntries(c)
		if err != nil {
			return err
		}

		buf, err := StockLedgerWorkbook(entries, "Stock Ledger")
		if err != nil {
			zap.L().Error("excel export failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate Excel file")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-ledger.xlsx"`)
		return c.Send(buf.Bytes())
	}
}

// GET /api/stock-ledger/export/pdf
func StockLedgerPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := filteredEntries(c)
		if err != nil {
			return err
		}

		data, err := StockLedgerReport(entries, "Stock Ledger Report")
		if err != nil {
			zap.L().Error("pdf export failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate PDF file")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-ledger.pdf"`)
		return c.Send(data)
	}
}
