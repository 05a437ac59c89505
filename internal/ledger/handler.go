package ledger

import (
	"strconv"

	"inventory-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LedgerResponse struct {
	Entries  []Entry  `json:"entries"`
	Warnings []string `json:"warnings,omitempty"`
}

func filterFromQuery(c *fiber.Ctx) FilterOptions {
	return FilterOptions{
		Supplier: c.Query("supplier"),
		Company:  c.Query("company"),
		Part:     c.Query("part"),
		DCNumber: c.Query("dc_number"),
	}
}

// GET /api/stock-ledger?supplier=&company=&part=&dc_number=&include_warnings=true
func StockLedgerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := Load(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load stock data")
		}

		entries, warnings := Build(snap)
		if len(warnings) > 0 {
			zap.L().Warn("stock ledger dropped transactions",
				zap.Int("count", len(warnings)),
				zap.Strings("warnings", warnings))
		}

		resp := LedgerResponse{Entries: filterFromQuery(c).Apply(entries)}
		if c.QueryBool("include_warnings") {
			resp.Warnings = warnings
		}

		return c.JSON(resp)
	}
}

// GET /api/availability?supplier_id=1&part_id=2
func AvailabilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplierID, err := strconv.ParseUint(c.Query("supplier_id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
		}
		partID, err := strconv.ParseUint(c.Query("part_id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "part_id is required")
		}

		snap, err := Load(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load stock data")
		}

		return c.JSON(fiber.Map{
			"supplier_id": supplierID,
			"part_id":     partID,
			"available":   snap.Available(uint(supplierID), uint(partID)),
		})
	}
}
