package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/errors"
	"devconnector/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	profileHandler *handler.ProfileHandler,
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
	api.GET("/users/test", userHandler.Test)
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/profile/test", profileHandler.Test)

	posts := api.Group("/posts")
	posts.GET("/test", postHandler.Test)
	posts.GET("", postHandler.ListPosts)
	posts.GET("/:id", postHandler.GetPost)

	// Secured routes (require a bearer token in the Authorization header).
	// Any missing, malformed, tampered or expired token short-circuits with
	// 401 before the handler runs.
	secured := posts.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authorization denied",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.POST("", postHandler.CreatePost)
	secured.DELETE("/:id", postHandler.DeletePost)
	secured.POST("/like/:id", postHandler.Like)
	secured.POST("/unlike/:id", postHandler.Unlike)
	secured.POST("/comment/:id", postHandler.AddComment)
	secured.DELETE("/comment/:id/:commentId", postHandler.DeleteComment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
