package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/i-nap/lekhsewa/internal/config"
	"github.com/i-nap/lekhsewa/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	canvasHandler *handler.CanvasHandler,
	formHandler *handler.FormHandler,
	messageHandler *handler.MessageHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodPatch},
		AllowHeaders: []string{"*"},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Canvas image processing
	api.POST("/sendcanvasimage", canvasHandler.SendCanvasImage)

	// User plan and quota
	api.GET("/getuserplan", userHandler.GetUserPlan)
	api.GET("/changeplantopro", userHandler.ChangePlanToPro)
	api.GET("/getuserquota", userHandler.GetUserQuota)

	// Form search and retrieval
	api.GET("/search", formHandler.Search)
	api.GET("/suggest", formHandler.Suggest)
	api.GET("/getformdata/:id", formHandler.GetFormData)
	api.POST("/form", formHandler.CreateForm)
	api.DELETE("/form/:id", formHandler.DeleteForm)

	// Contact messages
	api.POST("/message", messageHandler.CreateMessage)

	// Plan payments
	api.POST("/esewa/initiate", paymentHandler.InitiatePayment)
	api.GET("/esewa/verify", paymentHandler.VerifyPayment)

	// Routes requiring a validated bearer token
	me := api.Group("/me", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
	me.POST("/sync", userHandler.SyncMe)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
