package transactions

import (
	"fmt"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateDispatchRequest struct {
	Date         string `json:"date"`
	CompanyID    uint   `json:"company_id"`
	PartID       uint   `json:"part_id"`
	SendQuantity int    `json:"send_quantity"`
}

type DispatchResponse struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	CompanyID    uint   `json:"company_id"`
	CompanyName  string `json:"company_name"`
	SupplierID   uint   `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	PartID       uint   `json:"part_id"`
	PartNumber   string `json:"part_number"`
	PartName     string `json:"part_name"`
	SendQuantity int    `json:"send_quantity"`
	CreatedAt    string `json:"created_at"`
}

// POST /api/company-dispatches
//
// The supplier is taken from the company, never from the request, and the
// availability check runs inside the insert transaction so the sums it
// compares against cannot be staler than the snapshot a client saw. Two
// dispatches committing at the same instant can still both pass the check;
// reconciliation surfaces that as a negative available quantity.
func CreateDispatchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDispatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		date, err := time.Parse(dateLayout, body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
		}
		if body.SendQuantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "send_quantity must be at least 1")
		}

		var company models.Company
		if err := database.DB.First(&company, body.CompanyID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "company_id does not reference a known company")
		}
		var part models.Part
		if err := database.DB.First(&part, body.PartID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "part_id does not reference a known part")
		}

		dispatch := models.CompanyDispatch{
			Date:         date,
			CompanyID:    company.ID,
			PartID:       part.ID,
			SendQuantity: body.SendQuantity,
			SupplierID:   company.SupplierID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			available, err := availableInTx(tx, company.SupplierID, part.ID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not compute available quantity")
			}
			if body.SendQuantity > available {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Insufficient quantity. Available: %d", available))
			}
			if err := tx.Create(&dispatch).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save transaction")
			}
			return nil
		})
		if err != nil {
			return err
		}

		var supplier models.Supplier
		supplierName := "Unknown Supplier"
		if err := database.DB.First(&supplier, company.SupplierID).Error; err == nil {
			supplierName = supplier.Name
		}

		writeTransactionLog(c, "company_dispatch", dispatch.ID,
			fmt.Sprintf("Company dispatch: %d x part %s from %s to %s",
				dispatch.SendQuantity, part.PartNumber, supplierName, company.CompanyName),
			dispatch)

		resp := dispatchResponse(dispatch, &company, &part)
		resp.SupplierName = supplierName
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// availableInTx computes received-minus-dispatched for a (supplier, part)
// pair with two aggregate queries on tx. It takes no row locks; see
// CreateDispatchHandler for the accepted concurrency window.
func availableInTx(tx *gorm.DB, supplierID, partID uint) (int, error) {
	var sent, dispatched int64

	if err := tx.Model(&models.WarehouseShipment{}).
		Where("supplier_id = ? AND part_id = ?", supplierID, partID).
		Select("COALESCE(SUM(send_quantity), 0)").
		Scan(&sent).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&models.CompanyDispatch{}).
		Where("supplier_id = ? AND part_id = ?", supplierID, partID).
		Select("COALESCE(SUM(send_quantity), 0)").
		Scan(&dispatched).Error; err != nil {
		return 0, err
	}

	return int(sent - dispatched), nil
}

// GET /api/company-dispatches?supplier_id=&company_id=&part_id=&date_from=&date_to=
func ListDispatchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("date DESC, created_at DESC")
		if supplierID := c.QueryInt("supplier_id"); supplierID > 0 {
			q = q.Where("supplier_id = ?", supplierID)
		}
		if companyID := c.QueryInt("company_id"); companyID > 0 {
			q = q.Where("company_id = ?", companyID)
		}
		if partID := c.QueryInt("part_id"); partID > 0 {
			q = q.Where("part_id = ?", partID)
		}
		q, err := applyDateRange(q, c)
		if err != nil {
			return err
		}

		var dispatches []models.CompanyDispatch
		if err := q.Find(&dispatches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list transactions")
		}

		suppliers, parts, err := loadLookups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load master data")
		}
		var companyRows []models.Company
		if err := database.DB.Find(&companyRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load master data")
		}
		companies := make(map[uint]*models.Company, len(companyRows))
		for i := range companyRows {
			companies[companyRows[i].ID] = &companyRows[i]
		}

		resp := make([]DispatchResponse, 0, len(dispatches))
		for _, d := range dispatches {
			r := dispatchResponse(d, companies[d.CompanyID], parts[d.PartID])
			if s := suppliers[d.SupplierID]; s != nil {
				r.SupplierName = s.Name
			}
			resp = append(resp, r)
		}

		return c.JSON(resp)
	}
}

func dispatchResponse(d models.CompanyDispatch, company *models.Company, part *models.Part) DispatchResponse {
	resp := DispatchResponse{
		ID:           d.ID,
		Date:         d.Date.Format(dateLayout),
		CompanyID:    d.CompanyID,
		CompanyName:  "Unknown Company",
		SupplierID:   d.SupplierID,
		SupplierName: "Unknown Supplier",
		PartID:       d.PartID,
		PartName:     "Unknown Part",
		SendQuantity: d.SendQuantity,
		CreatedAt:    d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if company != nil {
		resp.CompanyName = company.CompanyName
	}
	if part != nil {
		resp.PartNumber = part.PartNumber
		resp.PartName = part.PartName
	}
	return resp
}
