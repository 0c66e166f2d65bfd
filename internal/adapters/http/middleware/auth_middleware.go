package middleware

import (
	"strings"

	"nautica-prime/internal/config"
	"nautica-prime/internal/pkg/jwt"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Get token from Authorization header
		var accessToken string
		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// 2. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Token de acesso não informado")
		}

		// 3. Validate token
		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token de acesso expirado")
			}
			return response.Unauthorized(c, "Token de acesso inválido")
		}

		// 4. Set actor info in context
		c.Locals("actorID", claims.ActorID)
		c.Locals("nome", claims.Nome)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Não autenticado")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Você não tem permissão para acessar este recurso")
	}
}

// AdminOnly middleware allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(jwt.RoleAdmin)
}

// ClienteOnly middleware allows only the CLIENTE role
func ClienteOnly() fiber.Handler {
	return RoleMiddleware(jwt.RoleCliente)
}
