package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/services/questionnaires"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

// createQuestionnaireRequest accepts either new nested sections or ids of
// existing sections to copy into the new questionnaire.
type createQuestionnaireRequest struct {
	models.QuestionnaireDto
	SectionIDs []string `json:"sectionIds"`
}

type addSectionsRequest struct {
	SectionIDs []string `json:"sectionIds"`
}

// CreateQuestionnaire godoc
// @Summary      Create a questionnaire
// @Description  With a nested sections array the whole tree is created in
// @Description  one call. With sectionIds instead, the referenced sections
// @Description  are copied in as question-free templates. On any failure
// @Description  nothing is left behind.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body createQuestionnaireRequest true "Questionnaire"
// @Success      201  {object}  models.QuestionnaireStructure
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires [post]
func CreateQuestionnaire(c *fiber.Ctx) error {
	var req createQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	var (
		structure *models.QuestionnaireStructure
		err       error
	)
	if len(req.SectionIDs) > 0 {
		structure, err = questionnaires.Default().CreateQuestionnaireWithExistingSections(c.Context(), &req.QuestionnaireDto, req.SectionIDs)
	} else {
		structure, err = questionnaires.Default().CreateQuestionnaireWithSections(c.Context(), &req.QuestionnaireDto)
	}
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Questionnaire created successfully",
		"data":    structure,
	})
}

// GetQuestionnaires godoc
// @Summary      List questionnaires
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Param        search  query string false "Search title"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /questionnaires [get]
func GetQuestionnaires(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := services.GetQuestionnaires(params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetLatestQuestionnaireVersion godoc
// @Summary      Get the latest revision of a questionnaire by title
// @Description  Revisions share a title; the latest is the highest version
// @Description  string in descending sort order.
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        title query string true "Questionnaire title"
// @Success      200  {object}  models.Questionnaire
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/latest [get]
func GetLatestQuestionnaireVersion(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "title query parameter is required")
	}

	questionnaire, err := services.GetLatestQuestionnaireVersion(title)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questionnaire,
	})
}

// GetQuestionnairesByTechnology godoc
// @Summary      List questionnaires linked to a technology
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        technologyId path string true "Technology ID"
// @Success      200  {array}  models.Questionnaire
// @Router       /questionnaires/technology/{technologyId} [get]
func GetQuestionnairesByTechnology(c *fiber.Ctx) error {
	result, err := services.GetQuestionnairesByTechnology(c.Params("technologyId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"count":   len(result),
	})
}

// GetQuestionnaire godoc
// @Summary      Get a questionnaire by ID
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Questionnaire ID"
// @Success      200  {object}  models.Questionnaire
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [get]
func GetQuestionnaire(c *fiber.Ctx) error {
	questionnaire, err := services.GetQuestionnaireByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questionnaire,
	})
}

// GetQuestionnaireStructure godoc
// @Summary      Get the assembled questionnaire tree
// @Description  Sections in order, each with its questions in order.
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Questionnaire ID"
// @Success      200  {object}  models.QuestionnaireStructure
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/structure [get]
func GetQuestionnaireStructure(c *fiber.Ctx) error {
	structure, err := questionnaires.Default().GetStructure(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    structure,
	})
}

// UpdateQuestionnaire godoc
// @Summary      Update a questionnaire
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "Questionnaire ID"
// @Param        body body models.Questionnaire true "Questionnaire fields"
// @Success      200  {object}  models.Questionnaire
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [put]
func UpdateQuestionnaire(c *fiber.Ctx) error {
	var questionnaire models.Questionnaire
	if err := c.BodyParser(&questionnaire); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateQuestionnaire(c.Params("id"), &questionnaire)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Questionnaire updated successfully",
		"data":    updated,
	})
}

// DeleteQuestionnaire godoc
// @Summary      Delete a questionnaire
// @Description  The questionnaire's sections are detached, not deleted.
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Questionnaire ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [delete]
func DeleteQuestionnaire(c *fiber.Ctx) error {
	if err := services.DeleteQuestionnaire(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Questionnaire deleted successfully",
	})
}

// AddSectionsToQuestionnaire godoc
// @Summary      Link existing sections to a questionnaire
// @Description  A section owned by another questionnaire moves to this one.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        questionnaireId path string             true "Questionnaire ID"
// @Param        body            body addSectionsRequest true "Section IDs"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{questionnaireId}/sections [post]
func AddSectionsToQuestionnaire(c *fiber.Ctx) error {
	var req addSectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	count, err := questionnaires.Default().AddSectionsToQuestionnaire(c.Context(), c.Params("questionnaireId"), req.SectionIDs)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sections added to questionnaire successfully",
		"count":   count,
	})
}
