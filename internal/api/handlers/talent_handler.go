package handlers

import (
	"errors"
	"strconv"

	"talent-compass/internal/dto"
	"talent-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TalentHandler struct {
	talentService *service.TalentService
	logger        *zap.Logger
}

func NewTalentHandler(talentService *service.TalentService, logger *zap.Logger) *TalentHandler {
	return &TalentHandler{
		talentService: talentService,
		logger:        logger,
	}
}

// GetQuestions godoc
// @Summary List questionnaire items
// @Description Get all talent questionnaire questions
// @Tags talent
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.QuestionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/talent/questions [get]
func (h *TalentHandler) GetQuestions(c *fiber.Ctx) error {
	questions, err := h.talentService.ListQuestions(c.Context())
	if err != nil {
		h.logger.Error("Failed to list questions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list questions",
		})
	}

	return c.JSON(questions)
}

// SubmitAnswers godoc
// @Summary Submit questionnaire answers
// @Description Store the authenticated user's questionnaire answers
// @Tags talent
// @Accept json
// @Produce json
// @Param request body dto.QuestionnaireSubmission true "Questionnaire answers"
// @Security Bearer
// @Success 201 {object} dto.SubmitAnswersResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/talent/answers [post]
func (h *TalentHandler) SubmitAnswers(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.QuestionnaireSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(req.Answers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one answer is required",
		})
	}

	accepted, err := h.talentService.SubmitAnswers(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnswer) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to store answers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store answers",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitAnswersResponse{Accepted: accepted})
}

// GetRecommendations godoc
// @Summary Get career recommendations
// @Description Compute ranked career recommendations from the user's questionnaire answers
// @Tags talent
// @Produce json
// @Param limit query int false "Maximum recommendations to return (default 5)"
// @Security Bearer
// @Success 200 {array} dto.CareerRecommendation
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/talent/recommendations [get]
func (h *TalentHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	topN := 0
	if raw := c.Query("limit"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil || topN < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid limit",
			})
		}
	}

	recommendations, err := h.talentService.GetRecommendations(c.Context(), userID, topN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAnswers):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No answers found for this user",
			})
		case errors.Is(err, service.ErrInvalidAnswer):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			h.logger.Error("Failed to compute recommendations", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to compute recommendations",
			})
		}
	}

	return c.JSON(recommendations)
}
