package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Roles carried by service tokens.
const (
	RoleAdmin   = "admin"
	RoleService = "service"
)

// RBAC enforces role-based access control on the collaborator-facing routes.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
