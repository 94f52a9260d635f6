package middleware

import (
	"github.com/gofiber/fiber/v2"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

// Protected validates the session token and sets user context.
// token ต้องผ่านทั้ง signature check และมี session record ฝั่ง server
func Protected(userService services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractToken(c)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing session token")
		}

		session, err := userService.Authenticate(c.UserContext(), token)
		if err != nil {
			// expired, forged, logged out - ตอบเหมือนกันหมด ไม่บอกสาเหตุ
			logger.WarnContext(c.UserContext(), "Session validation failed", "path", c.Path())
			return utils.UnauthorizedResponse(c, "Not authenticated")
		}

		c.Locals("user", &utils.UserContext{
			ID:        session.UserID,
			Username:  session.Username,
			SessionID: session.ID,
		})

		return c.Next()
	}
}

// Optional sets user context when a valid session token is present
// but never rejects the request. Handlers decide what an anonymous
// caller gets.
func Optional(userService services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractToken(c)
		if token == "" {
			return c.Next()
		}

		session, err := userService.Authenticate(c.UserContext(), token)
		if err != nil {
			return c.Next()
		}

		c.Locals("user", &utils.UserContext{
			ID:        session.UserID,
			Username:  session.Username,
			SessionID: session.ID,
		})

		return c.Next()
	}
}
