package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/service"
)

// InsightsHandler handles the AI insights call-through.
type InsightsHandler struct {
	insights *service.InsightsService
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(insights *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Register sets up the insights route on a protected group.
func (h *InsightsHandler) Register(api fiber.Router) {
	api.Post("/get-insights", h.GetInsights)
}

// GetInsights forwards the student's snapshot to the AI backend and
// returns the generated text. A failed AI call surfaces as 500.
func (h *InsightsHandler) GetInsights(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body service.InsightsRequest
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	text, err := h.insights.GetInsights(c.Context(), body)
	if err != nil {
		slog.Error("insights call failed", "user_id", uc.UserID, "error", err)
		return errJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"insights": text})
}
