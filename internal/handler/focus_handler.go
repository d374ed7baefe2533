package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// FocusHandler handles the append-only focus-session endpoint.
type FocusHandler struct {
	sessions port.FocusStore
}

// NewFocusHandler creates a new focus-session handler.
func NewFocusHandler(sessions port.FocusStore) *FocusHandler {
	return &FocusHandler{sessions: sessions}
}

// Register sets up the focus-session route on a protected group.
func (h *FocusHandler) Register(api fiber.Router) {
	api.Post("/focus-sessions", h.Create)
}

// Create logs one completed focus session. Duration must be positive;
// task_id is optional and may point at an already-deleted task.
func (h *FocusHandler) Create(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		DurationMinutes int     `json:"duration_minutes"`
		TaskID          *string `json:"task_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.DurationMinutes <= 0 {
		return errMsg(c, fiber.StatusBadRequest, "Valid duration is required.")
	}

	taskID := body.TaskID
	if taskID != nil && *taskID == "" {
		taskID = nil
	}

	session, err := h.sessions.CreateFocusSession(c.Context(), uc.UserID, body.DurationMinutes, taskID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}
