package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.Project true "Project"
// @Success      201  {object}  models.Project
// @Failure      400  {object}  models.ErrorResponse
// @Router       /projects [post]
func CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := services.CreateProject(&project); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created successfully",
		"data":    project,
	})
}

// GetProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Param        search  query string false "Search name or client"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /projects [get]
func GetProjects(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := services.GetProjects(params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetProject godoc
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200  {object}  models.Project
// @Failure      404  {object}  models.ErrorResponse
// @Router       /projects/{id} [get]
func GetProject(c *fiber.Ctx) error {
	project, err := services.GetProjectByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    project,
	})
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string         true "Project ID"
// @Param        body body models.Project true "Project fields"
// @Success      200  {object}  models.Project
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /projects/{id} [put]
func UpdateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateProject(c.Params("id"), &project)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project updated successfully",
		"data":    updated,
	})
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /projects/{id} [delete]
func DeleteProject(c *fiber.Ctx) error {
	if err := services.DeleteProject(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted successfully",
	})
}
