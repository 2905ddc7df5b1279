package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
)

// APITokenMiddleware es la puerta de acceso de los recursos de la consola:
// exige `Authorization: Bearer <token>` y compara el token byte a byte contra
// el secreto configurado. Sin secreto configurado falla cerrado con 500,
// distinguible de un fallo de credenciales (401).
func APITokenMiddleware(apiToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiToken == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "CONFIG", Message: "API_TOKEN no está configurado"})
		}
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		if token != apiToken {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		return c.Next()
	}
}
