package main

// @title           Library Lending API
// @version         1.0
// @description     REST API for managing library books and borrow transactions.

// @host      localhost:4000
// @BasePath  /api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/booklend/library-api/internal/config"
	"github.com/booklend/library-api/internal/db"
	"github.com/booklend/library-api/internal/docs"
	"github.com/booklend/library-api/internal/events"
	"github.com/booklend/library-api/internal/handler"
	"github.com/booklend/library-api/internal/middleware"
	"github.com/booklend/library-api/internal/model"
	"github.com/booklend/library-api/internal/repository"
	"github.com/booklend/library-api/internal/validation"
	"github.com/booklend/library-api/pkg/logger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.AutoMigrate(&model.Book{}, &model.Borrow{}); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, log)
		if err != nil {
			log.Fatal("event publisher setup failed", zap.Error(err))
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.ErrorHandler(log))

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, validation.ErrorResponse{
			Success: false,
			Message: "Route not found",
		})
	})

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		bookRepo := repository.NewGormBookRepository(database)
		bookHandler := handler.NewBookHandler(bookRepo, publisher, log)
		bookHandler.RegisterRoutes(api)

		borrowRepo := repository.NewGormBorrowRepository(database, log)
		borrowHandler := handler.NewBorrowHandler(borrowRepo, publisher, log)
		borrowHandler.RegisterRoutes(api)
	}

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = "/api"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := e.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
