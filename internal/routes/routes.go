package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-report/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, reportHandler *handlers.ReportHandler) {
	api := router.Group("/api/v1")

	reportRoutes := NewReportRoutes(reportHandler)
	reportRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
