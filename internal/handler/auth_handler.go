package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/service"
)

// AuthHandler handles the authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterPublic sets up the unauthenticated auth routes.
func (h *AuthHandler) RegisterPublic(app fiber.Router) {
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)
	app.Get("/auth/google", h.GoogleWeb)
	app.Post("/auth/google/native", h.GoogleNative)
}

// RegisterProtected sets up the auth routes that act on the current token.
func (h *AuthHandler) RegisterProtected(api fiber.Router) {
	api.Put("/auth/password", h.UpdatePassword)
}

// Signup registers a new email/password account.
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.SignUp(c.Context(), body.Email, body.Password, body.FirstName, body.LastName)
	if errors.Is(err, service.ErrUserNotCreated) {
		return errJSON(c, fiber.StatusInternalServerError, err)
	}
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Login exchanges email/password for a session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.authService.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{"session": session})
}

// UpdatePassword sets a new password for the authenticated user.
func (h *AuthHandler) UpdatePassword(c fiber.Ctx) error {
	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if len(body.NewPassword) < 6 {
		return errMsg(c, fiber.StatusBadRequest, "New password must be at least 6 characters long.")
	}

	if err := h.authService.UpdatePassword(c.Context(), middleware.GetAccessToken(c), body.NewPassword); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully."})
}

// GoogleWeb returns the consent-screen URL for the browser flow.
func (h *AuthHandler) GoogleWeb(c fiber.Ctx) error {
	result, err := h.authService.SignInWithGoogle(c.Context(), domain.GoogleSignIn{
		Web: &domain.GoogleWeb{},
	})
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"url": result.URL})
}

// GoogleNative exchanges a mobile SDK ID token for a session.
func (h *AuthHandler) GoogleNative(c fiber.Ctx) error {
	var body struct {
		IDToken string `json:"idToken"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return errMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.IDToken == "" {
		return errMsg(c, fiber.StatusBadRequest, "idToken is required.")
	}

	result, err := h.authService.SignInWithGoogle(c.Context(), domain.GoogleSignIn{
		Native: &domain.GoogleNative{IDToken: body.IDToken},
	})
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{"session": result.Session})
}
