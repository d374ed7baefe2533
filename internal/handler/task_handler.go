package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

const taskNotFoundMsg = "Task not found or permission denied."

// TaskHandler handles the task CRUD endpoints. Every store call is scoped
// by the authenticated user; a wrong id and a wrong owner are both
// reported as the same 404.
type TaskHandler struct {
	tasks port.TaskStore
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(tasks port.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Register sets up task routes on a protected group.
func (h *TaskHandler) Register(api fiber.Router) {
	api.Get("/tasks", h.List)
	api.Post("/tasks", h.Create)
	api.Put("/tasks/:id", h.Update)
	api.Patch("/tasks/:id/status", h.UpdateStatus)
	api.Delete("/tasks/:id", h.Delete)
}

// List returns the user's tasks, newest first, optionally filtered by
// ?status=.
func (h *TaskHandler) List(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := h.tasks.ListTasks(c.Context(), uc.UserID, c.Query("status"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(tasks)
}

// Create inserts a new task. Name is required and checked before any store
// call; the task starts as Pending.
func (h *TaskHandler) Create(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body domain.TaskInput
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Name == "" {
		return errMsg(c, fiber.StatusBadRequest, "Task name is required.")
	}

	task, err := h.tasks.CreateTask(c.Context(), uc.UserID, body)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update overwrites a task's writable fields.
func (h *TaskHandler) Update(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body domain.TaskInput
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Name == "" {
		return errMsg(c, fiber.StatusBadRequest, "Task name cannot be empty.")
	}

	task, err := h.tasks.UpdateTask(c.Context(), uc.UserID, c.Params("id"), body)
	if errors.Is(err, port.ErrTaskNotFound) {
		return errMsg(c, fiber.StatusNotFound, taskNotFoundMsg)
	}
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(task)
}

// UpdateStatus sets only the status. Any status value is accepted; the
// Pending → In Progress → Completed flow is not enforced server-side.
func (h *TaskHandler) UpdateStatus(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Status == "" {
		return errMsg(c, fiber.StatusBadRequest, "Status is required.")
	}

	task, err := h.tasks.UpdateTaskStatus(c.Context(), uc.UserID, c.Params("id"), body.Status)
	if errors.Is(err, port.ErrTaskNotFound) {
		return errMsg(c, fiber.StatusNotFound, taskNotFoundMsg)
	}
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(task)
}

// Delete removes a task. Always 204 with an empty body on success, even if
// the id matched nothing or focus sessions still reference it.
func (h *TaskHandler) Delete(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.tasks.DeleteTask(c.Context(), uc.UserID, c.Params("id")); err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
