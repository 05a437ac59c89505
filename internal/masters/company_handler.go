package masters

import (
	"fmt"
	"strings"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCompanyRequest struct {
	CompanyCode   string `json:"company_code"`
	CompanyName   string `json:"company_name"`
	GSTNumber     string `json:"gst_number"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	SupplierID    uint   `json:"supplier_id"`
}

type UpdateCompanyRequest struct {
	CompanyCode   *string `json:"company_code"`
	CompanyName   *string `json:"company_name"`
	GSTNumber     *string `json:"gst_number"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	SupplierID    *uint   `json:"supplier_id"`
}

type CompanyResponse struct {
	ID            uint   `json:"id"`
	CompanyCode   string `json:"company_code"`
	CompanyName   string `json:"company_name"`
	GSTNumber     string `json:"gst_number"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	SupplierID    uint   `json:"supplier_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func companyResponse(co models.Company) CompanyResponse {
	return CompanyResponse{
		ID:            co.ID,
		CompanyCode:   co.CompanyCode,
		CompanyName:   co.CompanyName,
		GSTNumber:     co.GSTNumber,
		ContactNumber: co.ContactNumber,
		Address:       co.Address,
		SupplierID:    co.SupplierID,
		CreatedAt:     co.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     co.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// POST /api/companies
func CreateCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(body.CompanyCode) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "company_code is required")
		}
		if strings.TrimSpace(body.CompanyName) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "company_name is required")
		}
		if body.SupplierID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
		}

		// Soft reference: checked at creation only, the store keeps no
		// constraint and the supplier can still be deleted later.
		var supplier models.Supplier
		if err := database.DB.First(&supplier, body.SupplierID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id does not reference a known supplier")
		}

		company := models.Company{
			CompanyCode:   strings.TrimSpace(body.CompanyCode),
			CompanyName:   strings.TrimSpace(body.CompanyName),
			GSTNumber:     strings.TrimSpace(body.GSTNumber),
			ContactNumber: strings.TrimSpace(body.ContactNumber),
			Address:       strings.TrimSpace(body.Address),
			SupplierID:    body.SupplierID,
		}

		if err := database.DB.Create(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save company")
		}

		writeMasterLog(c, "company", company.ID, models.AuditActionCreate,
			fmt.Sprintf("Company created: %s", company.CompanyName), nil, company)

		return c.Status(fiber.StatusCreated).JSON(companyResponse(company))
	}
}

// GET /api/companies?supplier_id=1
func ListCompaniesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("created_at DESC")
		if supplierID := c.QueryInt("supplier_id"); supplierID > 0 {
			q = q.Where("supplier_id = ?", supplierID)
		}

		var companies []models.Company
		if err := q.Find(&companies).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list companies")
		}

		resp := make([]CompanyResponse, 0, len(companies))
		for _, co := range companies {
			resp = append(resp, companyResponse(co))
		}

		return c.JSON(resp)
	}
}

// PUT /api/companies/:id
func UpdateCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var company models.Company
		if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Company not found")
		}

		var body UpdateCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := company
		updated := false

		if body.CompanyCode != nil {
			code := strings.TrimSpace(*body.CompanyCode)
			if code == "" {
				return fiber.NewError(fiber.StatusBadRequest, "company_code cannot be empty")
			}
			company.CompanyCode = code
			updated = true
		}
		if body.CompanyName != nil {
			name := strings.TrimSpace(*body.CompanyName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "company_name cannot be empty")
			}
			company.CompanyName = name
			updated = true
		}
		if body.GSTNumber != nil {
			company.GSTNumber = strings.TrimSpace(*body.GSTNumber)
			updated = true
		}
		if body.ContactNumber != nil {
			company.ContactNumber = strings.TrimSpace(*body.ContactNumber)
			updated = true
		}
		if body.Address != nil {
			company.Address = strings.TrimSpace(*body.Address)
			updated = true
		}
		if body.SupplierID != nil {
			if *body.SupplierID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "supplier_id cannot be empty")
			}
			var supplier models.Supplier
			if err := database.DB.First(&supplier, *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "supplier_id does not reference a known supplier")
			}
			company.SupplierID = *body.SupplierID
			updated = true
		}

		if !updated {
			return c.JSON(companyResponse(company))
		}

		if err := database.DB.Save(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update company")
		}

		writeMasterLog(c, "company", company.ID, models.AuditActionUpdate,
			fmt.Sprintf("Company updated: %s", company.CompanyName), before, company)

		return c.JSON(companyResponse(company))
	}
}

// DELETE /api/companies/:id
func DeleteCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var company models.Company
		if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Company not found")
		}

		if err := database.DB.Delete(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete company")
		}

		writeMasterLog(c, "company", company.ID, models.AuditActionDelete,
			fmt.Sprintf("Company deleted: %s", company.CompanyName), company, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
