package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services/audits"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateAudit godoc
// @Summary      Create an audit
// @Description  The project and lead auditor must exist. New audits start in
// @Description  planning.
// @Tags         audits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.Audit true "Audit"
// @Success      201  {object}  models.Audit
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits [post]
func CreateAudit(c *fiber.Ctx) error {
	var audit models.Audit
	if err := c.BodyParser(&audit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := audits.CreateAudit(&audit); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Audit created successfully",
		"data":    audit,
	})
}

// GetAudits godoc
// @Summary      List audits
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        page      query int    false "Page"
// @Param        limit     query int    false "Page size"
// @Param        status    query string false "Filter by status"
// @Param        projectId query string false "Filter by project"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /audits [get]
func GetAudits(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := audits.GetAudits(params, c.Query("status"), c.Query("projectId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetOverdueAudits godoc
// @Summary      List open audits past the two-week mark
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Audit
// @Router       /audits/overdue [get]
func GetOverdueAudits(c *fiber.Ctx) error {
	result, err := audits.GetOverdueAudits()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"count":   len(result),
	})
}

// GetAudit godoc
// @Summary      Get an audit by ID
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits/{id} [get]
func GetAudit(c *fiber.Ctx) error {
	audit, err := audits.GetAuditByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    audit,
	})
}

// UpdateAudit godoc
// @Summary      Update an audit
// @Description  Completed and cancelled are reached through the lifecycle
// @Description  endpoints, not here.
// @Tags         audits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string       true "Audit ID"
// @Param        body body models.Audit true "Audit fields"
// @Success      200  {object}  models.Audit
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /audits/{id} [put]
func UpdateAudit(c *fiber.Ctx) error {
	var audit models.Audit
	if err := c.BodyParser(&audit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := audits.UpdateAudit(c.Params("id"), &audit)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit updated successfully",
		"data":    updated,
	})
}

// DeleteAudit godoc
// @Summary      Delete an audit and its answers
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits/{id} [delete]
func DeleteAudit(c *fiber.Ctx) error {
	if err := audits.DeleteAudit(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit deleted successfully",
	})
}

// StartAudit godoc
// @Summary      Start a planning audit
// @Description  Moves the audit to in-progress and schedules the overdue
// @Description  check two weeks out.
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /audits/{id}/start [post]
func StartAudit(c *fiber.Ctx) error {
	audit, err := audits.StartAudit(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit started successfully",
		"data":    audit,
	})
}

// CompleteAudit godoc
// @Summary      Complete an audit in review
// @Description  Stamps the completion date and persists the final score.
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /audits/{id}/complete [post]
func CompleteAudit(c *fiber.Ctx) error {
	audit, err := audits.CompleteAudit(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit completed successfully",
		"data":    audit,
	})
}

// CancelAudit godoc
// @Summary      Cancel an open audit
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /audits/{id}/cancel [post]
func CancelAudit(c *fiber.Ctx) error {
	audit, err := audits.CancelAudit(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit cancelled successfully",
		"data":    audit,
	})
}

// AddTeamMember godoc
// @Summary      Add a user to the audit team
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Audit ID"
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits/{id}/team/{userId} [post]
func AddTeamMember(c *fiber.Ctx) error {
	audit, err := audits.AddTeamMember(c.Params("id"), c.Params("userId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Team member added successfully",
		"data":    audit,
	})
}

// RemoveTeamMember godoc
// @Summary      Remove a user from the audit team
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Audit ID"
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits/{id}/team/{userId} [delete]
func RemoveTeamMember(c *fiber.Ctx) error {
	audit, err := audits.RemoveTeamMember(c.Params("id"), c.Params("userId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Team member removed successfully",
		"data":    audit,
	})
}

// CalculateAuditScore godoc
// @Summary      Recompute and persist the audit score
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Audit ID"
// @Success      200  {object}  models.Audit
// @Failure      404  {object}  models.ErrorResponse
// @Router       /audits/{id}/score [post]
func CalculateAuditScore(c *fiber.Ctx) error {
	audit, err := audits.CalculateAndStoreScore(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Audit score calculated successfully",
		"data":    audit,
	})
}
