package response

import "github.com/gofiber/fiber/v2"

// The backend's failure convention is an {"erro": ...} envelope whose
// payload is a plain message or, for validation failures, an object
// with an issues array. The client normalizes both shapes.

// Issue is one validation failure message
type Issue struct {
	Message string `json:"message"`
}

// Erro sends an error response with a plain message
func Erro(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"erro": message})
}

// ErroIssues sends a 400 validation failure with per-field messages
func ErroIssues(c *fiber.Ctx, issues ...Issue) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"erro": fiber.Map{"issues": issues},
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Erro(c, fiber.StatusInternalServerError, message)
}
