package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookstore-report/internal/config"
	"bookstore-report/internal/database"
	"bookstore-report/internal/handlers"
	"bookstore-report/internal/middlewares"
	"bookstore-report/internal/repositories"
	"bookstore-report/internal/routes"
	"bookstore-report/internal/services"
	"bookstore-report/internal/utils"
)

// NewServer wires the report API on top of an open database.
func NewServer(cfg *config.Config, db *database.DB) *http.Server {
	// Dependency injection
	salesRepo := repositories.NewSalesRepository(db.Gorm)
	reportService := services.NewReportService(salesRepo)
	reportHandler := handlers.NewReportHandler(reportService, cfg.Lang)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      NewRouter(cfg, reportHandler),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func NewRouter(cfg *config.Config, reportHandler *handlers.ReportHandler) *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.RequestID)
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	routes.RegisterRoutes(router, reportHandler)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || utils.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
