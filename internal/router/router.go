package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"smartgoals/internal/auth"
	"smartgoals/internal/config"
	"smartgoals/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	goalHandler *handler.GoalHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept, "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	// 120 requests per minute per client, matching the deployed limit.
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(2)))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Bearer token from the Authorization header, or from the session cookie
	// the login flow sets.
	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:Authorization:Bearer ,cookie:" + auth.AccessTokenCookie,
	})

	api := e.Group("/api")

	// User routes (original public surface)
	users := api.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout)
	users.GET("", userHandler.ListUsers)
	users.GET("/me", userHandler.Me, requireAuth)
	users.GET("/:id", userHandler.GetUser)
	users.PATCH("/update/:id", userHandler.UpdateUser)
	users.DELETE("/deleted/:id", userHandler.DeleteUser)

	// Goal routes; reads are public, writes require a valid token
	goals := api.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.POST("", goalHandler.CreateGoal, requireAuth)
	goals.PATCH("/:id", goalHandler.UpdateGoal, requireAuth)
	goals.DELETE("/:id", goalHandler.DeleteGoal, requireAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
