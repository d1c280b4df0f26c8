package routes

import (
	"github.com/gin-gonic/gin"

	"bookstore-report/internal/handlers"
)

type ReportRoutes struct {
	handler *handlers.ReportHandler
}

func NewReportRoutes(handler *handlers.ReportHandler) *ReportRoutes {
	return &ReportRoutes{handler: handler}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/sales", r.handler.SalesReport)
	}
}
