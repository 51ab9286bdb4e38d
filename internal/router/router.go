package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mealplan/internal/auth"
	"mealplan/internal/errors"
	"mealplan/internal/handler"
	"mealplan/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	dishHandler *handler.DishHandler,
	recommendHandler *handler.RecommendHandler,
	menuHandler *handler.MenuHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/dishes", dishHandler.List)
	api.POST("/recommend", recommendHandler.Recommend)
	api.GET("/week-menu", menuHandler.Plan)
	api.POST("/week-menu/generate", menuHandler.Generate)
	api.PUT("/week-menu/day/:day", menuHandler.RegenerateDay)
	api.POST("/login", authHandler.Login)

	// Routes requiring a live admin session
	secured := api.Group("", TokenGate(authService))
	secured.POST("/dishes", dishHandler.Create)
	secured.PUT("/dishes/:id", dishHandler.Update)
	secured.DELETE("/dishes/:id", dishHandler.Delete)
	secured.POST("/logout", authHandler.Logout)
}

// TokenGate rejects requests whose x-auth-token header does not name a live
// session.
func TokenGate(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(auth.TokenHeader)
			if err := authService.Verify(c.Request().Context(), token); err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
