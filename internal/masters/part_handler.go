package masters

import (
	"fmt"
	"strings"

	"inventory-backend/internal/audit"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreatePartRequest struct {
	PartNumber    string `json:"part_number"`
	RunningNumber string `json:"running_number"`
	PartName      string `json:"part_name"`
}

type UpdatePartRequest struct {
	PartNumber    *string `json:"part_number"`
	RunningNumber *string `json:"running_number"`
	PartName      *string `json:"part_name"`
}

type PartResponse struct {
	ID            uint   `json:"id"`
	PartNumber    string `json:"part_number"`
	RunningNumber string `json:"running_number"`
	PartName      string `json:"part_name"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func partResponse(p models.Part) PartResponse {
	return PartResponse{
		ID:            p.ID,
		PartNumber:    p.PartNumber,
		RunningNumber: p.RunningNumber,
		PartName:      p.PartName,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// POST /api/parts
func CreatePartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(body.PartNumber) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "part_number is required")
		}
		if strings.TrimSpace(body.PartName) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "part_name is required")
		}

		part := models.Part{
			PartNumber:    strings.TrimSpace(body.PartNumber),
			RunningNumber: strings.TrimSpace(body.RunningNumber),
			PartName:      strings.TrimSpace(body.PartName),
		}

		if err := database.DB.Create(&part).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save part")
		}

		writeMasterLog(c, "part", part.ID, models.AuditActionCreate,
			fmt.Sprintf("Part created: %s", part.PartNumber), nil, part)

		return c.Status(fiber.StatusCreated).JSON(partResponse(part))
	}
}

// GET /api/parts
func ListPartsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parts []models.Part
		if err := database.DB.Order("created_at DESC").Find(&parts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list parts")
		}

		resp := make([]PartResponse, 0, len(parts))
		for _, p := range parts {
			resp = append(resp, partResponse(p))
		}

		return c.JSON(resp)
	}
}

// PUT /api/parts/:id
func UpdatePartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var part models.Part
		if err := database.DB.First(&part, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Part not found")
		}

		var body UpdatePartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := part
		updated := false

		if body.PartNumber != nil {
			pn := strings.TrimSpace(*body.PartNumber)
			if pn == "" {
				return fiber.NewError(fiber.StatusBadRequest, "part_number cannot be empty")
			}
			part.PartNumber = pn
			updated = true
		}
		if body.RunningNumber != nil {
			part.RunningNumber = strings.TrimSpace(*body.RunningNumber)
			updated = true
		}
		if body.PartName != nil {
			pn := strings.TrimSpace(*body.PartName)
			if pn == "" {
				return fiber.NewError(fiber.StatusBadRequest, "part_name cannot be empty")
			}
			part.PartName = pn
			updated = true
		}

		if !updated {
			return c.JSON(partResponse(part))
		}

		if err := database.DB.Save(&part).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update part")
		}

		writeMasterLog(c, "part", part.ID, models.AuditActionUpdate,
			fmt.Sprintf("Part updated: %s", part.PartNumber), before, part)

		return c.JSON(partResponse(part))
	}
}

// DELETE /api/parts/:id
//
// Plain delete: shipments and dispatches referencing the part are left in
// place, and the ledger drops rows it can no longer resolve.
func DeletePartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var part models.Part
		if err := database.DB.First(&part, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Part not found")
		}

		if err := database.DB.Delete(&part).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete part")
		}

		writeMasterLog(c, "part", part.ID, models.AuditActionDelete,
			fmt.Sprintf("Part deleted: %s", part.PartNumber), part, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func writeMasterLog(c *fiber.Ctx, entityType string, entityID uint, action models.AuditAction, description string, before, after any) {
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
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	}); logErr != nil {
		zap.L().Warn("could not write audit log", zap.Error(logErr))
	}
}
