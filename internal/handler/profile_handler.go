package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// ProfileHandler handles the profile read/update endpoints.
type ProfileHandler struct {
	profiles port.ProfileStore
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles port.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Register sets up profile routes on a protected group.
func (h *ProfileHandler) Register(api fiber.Router) {
	api.Get("/profile", h.Get)
	api.Put("/profile", h.Update)
}

// Get returns the profile row plus the email from the verified token.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.profiles.GetProfile(c.Context(), uc.UserID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	profile.Email = uc.Email
	return c.JSON(profile)
}

// Update overwrites the editable profile fields.
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return errMsg(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body domain.ProfileUpdate
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profiles.UpdateProfile(c.Context(), uc.UserID, body)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	profile.Email = uc.Email
	return c.JSON(profile)
}
