package handler

import (
	"net/http"

	"github.com/google/uuid"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"smartgoals/internal/auth"
	"smartgoals/internal/errors"
	"smartgoals/internal/model"
	"smartgoals/internal/service"
)

// UserHandler handles account and authentication endpoints.
type UserHandler struct {
	svc     service.UserService
	cookies *auth.CookieManager
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService, cookies *auth.CookieManager) *UserHandler {
	return &UserHandler{svc: svc, cookies: cookies}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"user_name" validate:"required,min=1,max=50"`
	LastName string `json:"user_lastname" validate:"required,min=1,max=50"`
	Username string `json:"user_username" validate:"required,min=1,max=50"`
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=6,max=50"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=6,max=50"`
}

// UpdateUserRequest represents a partial profile update. Omitted fields keep
// their stored values.
type UpdateUserRequest struct {
	Name     *string `json:"user_name" validate:"omitempty,min=1,max=50"`
	LastName *string `json:"user_lastname" validate:"omitempty,min=1,max=50"`
	Username *string `json:"user_username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"user_email" validate:"omitempty,email"`
}

// AuthResponse represents a successful signup or login response.
type AuthResponse struct {
	AccessToken string           `json:"accessToken"`
	User        model.PublicUser `json:"user"`
	Message     string           `json:"message,omitempty"`
}

// MessageResponse represents a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Name:     req.Name,
		LastName: req.LastName,
		Username: req.Username,
		Email:    req.Email,
		// Plaintext here; the model's save hook hashes it before insert.
		PasswordHash: req.Password,
	}

	created, token, err := h.svc.Signup(c.Request().Context(), user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		User:        created.Public(),
		Message:     "user created successfully",
	})
}

// Login godoc
// @Summary Authenticate and receive an access token
// @Description Sets the access_token session cookie alongside the JSON body.
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.cookies.Issue(c, token, auth.AccessTokenExpiry)

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		User:        user.Public(),
		Message:     "login successful",
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Description The token itself stays valid until its natural expiry.
// @Tags users
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/update/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateUser(c.Request().Context(), id, service.UserUpdate{
		Name:     req.Name,
		LastName: req.LastName,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/deleted/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted successfully"})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	rawID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// respondError translates a domain error at the handler boundary. Unexpected
// failures collapse to a generic 500 and are logged for operators.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
