package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/pkg/jwt"
)

// Locals keys de la identidad del usuario en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
)

// AttributionMiddleware lee un Bearer token opcional y guarda user_id/user_name en c.Locals
// para atribuir las entradas del ledger. No autoriza nada: sin header la petición sigue como
// anónima; un token presente pero inválido o vencido responde 401.
// Con jwtSecret vacío el header se ignora.
func AttributionMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if jwtSecret == "" || authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token vacío")
		}
		userID, userName, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, userName)
		return c.Next()
	}
}

// GetUserID devuelve el user_id del token ("" si la petición es anónima).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserName devuelve el user_name del token ("" si la petición es anónima).
func GetUserName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserName).(string)
	return s
}

// actorFrom arma la identidad de la mutación: la del token si existe, si no el user_name del body.
func actorFrom(c *fiber.Ctx, bodyUserName string) dto.Actor {
	a := dto.Actor{UserID: GetUserID(c), UserName: GetUserName(c)}
	if a.UserID == "" && a.UserName == "" {
		a.UserName = strings.TrimSpace(bodyUserName)
	}
	return a
}
