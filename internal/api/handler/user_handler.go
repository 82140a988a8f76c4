package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// UserHandler exposes the maintenance paths for synced users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetByClerkID handles GET /v1/users/clerk/:clerk_id.
//
// @Summary      Fetch a user by external identity id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        clerk_id  path      string  true  "External identity id"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/users/clerk/{clerk_id} [get]
func (h *UserHandler) GetByClerkID(c echo.Context) error {
	clerkID := c.Param("clerk_id")
	if clerkID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing clerk id")
	}

	user, err := h.service.GetByClerkID(c.Request().Context(), clerkID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PUT /v1/users/clerk/:clerk_id.
//
// Unknown clerk ids are a no-op by design: the identity provider owns the
// user set, so a missing user is not an error on this path.
//
// @Summary      Patch a user's mutable attributes
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clerk_id  path      string             true  "External identity id"
// @Param        body      body      updateUserRequest  true  "Fields to update"
// @Success      204       "updated or unknown user"
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/users/clerk/{clerk_id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	clerkID := c.Param("clerk_id")
	if clerkID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing clerk id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ClerkID: clerkID,
		Name:    req.Name,
		Email:   req.Email,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		ClerkID:   u.ClerkID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}
