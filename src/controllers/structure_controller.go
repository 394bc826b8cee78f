package controllers

import (
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStructure godoc
// @Summary      Get the full catalog in one payload
// @Description  Technologies, questionnaires, sections and questions in a
// @Description  single response for the composition UI.
// @Tags         structure
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.Catalog
// @Router       /structure [get]
func GetStructure(c *fiber.Ctx) error {
	catalog, err := services.GetCatalog()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog,
	})
}
