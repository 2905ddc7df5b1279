package http

import "github.com/gofiber/fiber/v2"

// CORSMiddleware permite que la consola consuma el API desde cualquier origen.
// El contrato con la consola exige que el preflight OPTIONS responda 200 sin
// cuerpo (el middleware cors de Fiber respondería 204), por eso va a mano.
func CORSMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Method() == fiber.MethodOptions {
			// SendStatus escribiría "OK" como cuerpo; el preflight debe ir vacío.
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
