package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/i-nap/lekhsewa/docs" // swagger docs

	"github.com/i-nap/lekhsewa/internal/cache"
	"github.com/i-nap/lekhsewa/internal/config"
	"github.com/i-nap/lekhsewa/internal/db"
	"github.com/i-nap/lekhsewa/internal/handler"
	"github.com/i-nap/lekhsewa/internal/logger"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/recognizer"
	"github.com/i-nap/lekhsewa/internal/repository"
	"github.com/i-nap/lekhsewa/internal/router"
	"github.com/i-nap/lekhsewa/internal/service"
)

// @title Lekhsewa Backend API
// @version 1.0
// @description Form building and handwriting recognition backend with plan quotas.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	appLog := logger.New(cfg.LogLevel)

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.FormField{},
		&model.FieldOption{},
		&model.CanvasImage{},
		&model.Message{},
		&model.PlanPayment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	formRepo := repository.NewFormRepository(gormDB)
	canvasRepo := repository.NewCanvasImageRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	paymentRepo := repository.NewPlanPaymentRepository(gormDB)

	// Initialize the recognition client
	recognizerClient := recognizer.NewHTTPClient(recognizer.Config{
		BaseURL: cfg.RecognizerURL,
		Timeout: cfg.RecognizerTimeout,
	})

	// Initialize services
	userService := service.NewUserService(userRepo, appLog)
	canvasService := service.NewCanvasService(canvasRepo, userService, recognizerClient, appLog)
	formService := service.NewFormService(formRepo, cacheClient)
	messageService := service.NewMessageService(messageRepo)
	paymentService := service.NewPaymentService(paymentRepo, userService, service.EsewaConfig{
		MerchantCode: cfg.EsewaMerchantCode,
		SecretKey:    cfg.EsewaSecretKey,
		SuccessURL:   cfg.EsewaSuccessURL,
		FailureURL:   cfg.EsewaFailureURL,
	}, appLog)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	canvasHandler := handler.NewCanvasHandler(canvasService)
	formHandler := handler.NewFormHandler(formService)
	messageHandler := handler.NewMessageHandler(messageService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		canvasHandler,
		formHandler,
		messageHandler,
		paymentHandler,
	)

	appLog.Info().Str("port", cfg.ServerPort).Msg("server starting")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
