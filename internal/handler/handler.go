package handler

import (
	"github.com/gofiber/fiber/v3"
)

// errJSON writes the uniform {"error": string} failure body. Upstream
// messages are forwarded without translation or redaction.
func errJSON(c fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// errMsg is errJSON for literal validation messages.
func errMsg(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
