package transactions

import (
	"fmt"
	"strings"
	"time"

	"inventory-backend/internal/audit"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateShipmentRequest struct {
	Date         string `json:"date"`
	SupplierID   uint   `json:"supplier_id"`
	PartID       uint   `json:"part_id"`
	DCNumber     string `json:"dc_number"`
	SendQuantity int    `json:"send_quantity"`
}

type ShipmentResponse struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	SupplierID   uint   `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	PartID       uint   `json:"part_id"`
	PartNumber   string `json:"part_number"`
	PartName     string `json:"part_name"`
	DCNumber     string `json:"dc_number"`
	SendQuantity int    `json:"send_quantity"`
	CreatedAt    string `json:"created_at"`
}

// POST /api/warehouse-shipments
func CreateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShipmentRequest
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

		var supplier models.Supplier
		if err := database.DB.First(&supplier, body.SupplierID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id does not reference a known supplier")
		}
		var part models.Part
		if err := database.DB.First(&part, body.PartID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "part_id does not reference a known part")
		}

		shipment := models.WarehouseShipment{
			Date:         date,
			SupplierID:   body.SupplierID,
			PartID:       body.PartID,
			DCNumber:     body.DCNumber,
			SendQuantity: body.SendQuantity,
		}

		if err := database.DB.Create(&shipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save transaction")
		}

		writeTransactionLog(c, "warehouse_shipment", shipment.ID,
			fmt.Sprintf("Warehouse shipment: %d x part %s to %s (DC %s)",
				shipment.SendQuantity, part.PartNumber, supplier.Name, shipment.DCNumber),
			shipment)

		return c.Status(fiber.StatusCreated).JSON(shipmentResponse(shipment, &supplier, &part))
	}
}

// GET /api/warehouse-shipments?supplier_id=&part_id=&dc_number=&date_from=&date_to=
func ListShipmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("date DESC, created_at DESC")
		if supplierID := c.QueryInt("supplier_id"); supplierID > 0 {
			q = q.Where("supplier_id = ?", supplierID)
		}
		if partID := c.QueryInt("part_id"); partID > 0 {
			q = q.Where("part_id = ?", partID)
		}
		if dc := c.Query("dc_number"); dc != "" {
			q = q.Where("LOWER(dc_number) LIKE ?", "%"+strings.ToLower(dc)+"%")
		}
		q, err := applyDateRange(q, c)
		if err != nil {
			return err
		}

		var shipments []models.WarehouseShipment
		if err := q.Find(&shipments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list transactions")
		}

		suppliers, parts, err := loadLookups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load master data")
		}

		resp := make([]ShipmentResponse, 0, len(shipments))
		for _, s := range shipments {
			resp = append(resp, shipmentResponse(s, suppliers[s.SupplierID], parts[s.PartID]))
		}

		return c.JSON(resp)
	}
}

func shipmentResponse(s models.WarehouseShipment, supplier *models.Supplier, part *models.Part) ShipmentResponse {
	resp := ShipmentResponse{
		ID:           s.ID,
		Date:         s.Date.Format(dateLayout),
		SupplierID:   s.SupplierID,
		SupplierName: "Unknown Supplier",
		PartID:       s.PartID,
		PartNumber:   "",
		PartName:     "Unknown Part",
		DCNumber:     s.DCNumber,
		SendQuantity: s.SendQuantity,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if supplier != nil {
		resp.SupplierName = supplier.Name
	}
	if part != nil {
		resp.PartNumber = part.PartNumber
		resp.PartName = part.PartName
	}
	return resp
}

// loadLookups fetches suppliers and parts keyed by id for display-name
// resolution. Rows referencing deleted masters keep their "Unknown"
// placeholders, mirroring the ledger's resolution behavior.
func loadLookups() (map[uint]*models.Supplier, map[uint]*models.Part, error) {
	var supplierRows []models.Supplier
	if err := database.DB.Find(&supplierRows).Error; err != nil {
		return nil, nil, err
	}
	var partRows []models.Part
	if err := database.DB.Find(&partRows).Error; err != nil {
		return nil, nil, err
	}

	suppliers := make(map[uint]*models.Supplier, len(supplierRows))
	for i := range supplierRows {
		suppliers[supplierRows[i].ID] = &supplierRows[i]
	}
	parts := make(map[uint]*models.Part, len(partRows))
	for i := range partRows {
		parts[partRows[i].ID] = &partRows[i]
	}
	return suppliers, parts, nil
}

func applyDateRange(q *gorm.DB, c *fiber.Ctx) (*gorm.DB, error) {
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_from must be in YYYY-MM-DD format")
		}
		q = q.Where("date >= ?", t)
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_to must be in YYYY-MM-DD format")
		}
		// inclusive upper bound
		q = q.Where("date < ?", t.AddDate(0, 0, 1))
	}
	return q, nil
}

func writeTransactionLog(c *fiber.Ctx, entityType string, entityID uint, description string, after any) {
	userID, userName, err := audit.Actor(c)
	if err != nil {
		zap.L().Warn("audit log skipped, no actor in context",
			zap.String("entity_type", entityType), zap.Uint("entity_id", entityID), zap.Error(err))
		return
	}
	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      models.AuditActionCreate,
		Description: description,
		After:       after,
	}); logErr != nil {
		zap.L().Warn("could not write audit log", zap.Error(logErr))
	}
}
