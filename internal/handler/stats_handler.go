package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/service"
)

// StatsHandler handles the three derived-statistics endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Register sets up stats routes on a protected group.
func (h *StatsHandler) Register(api fiber.Router) {
	api.Get("/dashboard-stats", h.Dashboard)
	api.Get("/progress-stats", h.Progress)
	api.Get("/profile-stats", h.ProfileStats)
}

// Dashboard returns the dashboard view model.
func (h *StatsHandler) Dashboard(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := h.statsService.Dashboard(c.Context(), uc.UserID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(view)
}

// Progress returns the progress view model, badges included.
func (h *StatsHandler) Progress(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := h.statsService.Progress(c.Context(), uc.UserID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(view)
}

// ProfileStats returns the aggregate block for the profile page.
func (h *StatsHandler) ProfileStats(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := h.statsService.ProfileStats(c.Context(), uc.UserID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(view)
}
