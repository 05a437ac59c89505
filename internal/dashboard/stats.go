package dashboard

import (
	"sort"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecentTransaction struct {
	ID           uint   `json:"id"`
	Type         string `json:"type"` // warehouse_shipment | company_dispatch
	Date         string `json:"date"`
	SupplierID   uint   `json:"supplier_id"`
	PartID       uint   `json:"part_id"`
	SendQuantity int    `json:"send_quantity"`
}

type StatsResponse struct {
	TotalParts         int64               `json:"total_parts"`
	TotalSuppliers     int64               `json:"total_suppliers"`
	TotalCompanies     int64               `json:"total_companies"`
	TotalTransactions  int64               `json:"total_transactions"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}

// GET /api/dashboard/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp StatsResponse

		var shipmentCount, dispatchCount int64
		if err := database.DB.Model(&models.Part{}).Count(&resp.TotalParts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute statistics")
		}
		if err := database.DB.Model(&models.Supplier{}).Count(&resp.TotalSuppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute statistics")
		}
		if err := database.DB.Model(&models.Company{}).Count(&resp.TotalCompanies).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute statistics")
		}
		if err := database.DB.Model(&models.WarehouseShipment{}).Count(&shipmentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute statistics")
		}
		if err := database.DB.Model(&models.CompanyDispatch{}).Count(&dispatchCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute statistics")
		}
		resp.TotalTransactions = shipmentCount + dispatchCount

		var shipments []models.WarehouseShipment
		if err := database.DB.Order("date DESC").Limit(5).Find(&shipments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load recent transactions")
		}
		var dispatches []models.CompanyDispatch
		if err := database.DB.Order("date DESC").Limit(5).Find(&dispatches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load recent transactions")
		}

		recent := make([]RecentTransaction, 0, len(shipments)+len(dispatches))
		for _, s := range shipments {
			recent = append(recent, RecentTransaction{
				ID:           s.ID,
				Type:         "warehouse_shipment",
				Date:         s.Date.Format("2006-01-02"),
				SupplierID:   s.SupplierID,
				PartID:       s.PartID,
				SendQuantity: s.SendQuantity,
			})
		}
		for _, d := range dispatches {
			recent = append(recent, RecentTransaction{
				ID:           d.ID,
				Type:         "company_dispatch",
				Date:         d.Date.Format("2006-01-02"),
				SupplierID:   d.SupplierID,
				PartID:       d.PartID,
				SendQuantity: d.SendQuantity,
			})
		}
		sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
		if len(recent) > 5 {
			recent = recent[:5]
		}
		resp.RecentTransactions = recent

		return c.JSON(resp)
	}
}
