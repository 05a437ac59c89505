package masters

import (
	"fmt"
	"strings"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateSupplierRequest struct {
	SupplierCode  string `json:"supplier_code"`
	Name          string `json:"name"`
	GSTNumber     string `json:"gst_number"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

type UpdateSupplierRequest struct {
	SupplierCode  *string `json:"supplier_code"`
	Name          *string `json:"name"`
	GSTNumber     *string `json:"gst_number"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
}

type SupplierResponse struct {
	ID            uint   `json:"id"`
	SupplierCode  string `json:"supplier_code"`
	Name          string `json:"name"`
	GSTNumber     string `json:"gst_number"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func supplierResponse(s models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		SupplierCode:  s.SupplierCode,
		Name:          s.Name,
		GSTNumber:     s.GSTNumber,
		ContactNumber: s.ContactNumber,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(body.SupplierCode) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_code is required")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		supplier := models.Supplier{
			SupplierCode:  strings.TrimSpace(body.SupplierCode),
			Name:          strings.TrimSpace(body.Name),
			GSTNumber:     strings.TrimSpace(body.GSTNumber),
			ContactNumber: strings.TrimSpace(body.ContactNumber),
			Address:       strings.TrimSpace(body.Address),
		}

		if err := database.DB.Create(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save supplier")
		}

		writeMasterLog(c, "supplier", supplier.ID, models.AuditActionCreate,
			fmt.Sprintf("Supplier created: %s", supplier.Name), nil, supplier)

		return c.Status(fiber.StatusCreated).JSON(supplierResponse(supplier))
	}
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := database.DB.Order("created_at DESC").Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list suppliers")
		}

		resp := make([]SupplierResponse, 0, len(suppliers))
		for _, s := range suppliers {
			resp = append(resp, supplierResponse(s))
		}

		return c.JSON(resp)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		var body UpdateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := supplier
		updated := false

		if body.SupplierCode != nil {
			code := strings.TrimSpace(*body.SupplierCode)
			if code == "" {
				return fiber.NewError(fiber.StatusBadRequest, "supplier_code cannot be empty")
			}
			supplier.SupplierCode = code
			updated = true
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			supplier.Name = name
			updated = true
		}
		if body.GSTNumber != nil {
			supplier.GSTNumber = strings.TrimSpace(*body.GSTNumber)
			updated = true
		}
		if body.ContactNumber != nil {
			supplier.ContactNumber = strings.TrimSpace(*body.ContactNumber)
			updated = true
		}
		if body.Address != nil {
			supplier.Address = strings.TrimSpace(*body.Address)
			updated = true
		}

		if !updated {
			return c.JSON(supplierResponse(supplier))
		}

		if err := database.DB.Save(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update supplier")
		}

		writeMasterLog(c, "supplier", supplier.ID, models.AuditActionUpdate,
			fmt.Sprintf("Supplier updated: %s", supplier.Name), before, supplier)

		return c.JSON(supplierResponse(supplier))
	}
}

// DELETE /api/suppliers/:id
//
// Plain delete. Transactions referencing the supplier stay in the store;
// ledger rows for it stop resolving and are dropped from the view.
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		if err := database.DB.Delete(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete supplier")
		}

		writeMasterLog(c, "supplier", supplier.ID, models.AuditActionDelete,
			fmt.Sprintf("Supplier deleted: %s", supplier.Name), supplier, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
