package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-report/internal/i18n"
	"bookstore-report/internal/models"
	"bookstore-report/internal/responses"
	"bookstore-report/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	defaultLang   string
}

func NewReportHandler(reportService *services.ReportService, defaultLang string) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		defaultLang:   defaultLang,
	}
}

type SalesReportResponse struct {
	Publisher string                 `json:"publisher"`
	Filter    models.PublisherFilter `json:"filter"`
	Lines     []string               `json:"lines"`
	Records   []models.SaleRecord    `json:"records"`
}

// SalesReport handles GET /api/v1/reports/sales?publisher=<id or name>&lang=<ru|en>
func (h *ReportHandler) SalesReport(c *gin.Context) {
	publisher := c.Query("publisher")
	if publisher == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "publisher query parameter is required")
		return
	}

	printer := i18n.NewPrinter(c.DefaultQuery("lang", h.defaultLang))

	report, err := h.reportService.Generate(c.Request.Context(), publisher)
	if err != nil {
		log.Printf("ERROR in SalesReport handler: %v", err)
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to build sales report")
		return
	}

	records := report.Records
	if records == nil {
		records = []models.SaleRecord{}
	}
	data := SalesReportResponse{
		Publisher: report.Input,
		Filter:    report.Filter,
		Lines:     report.Lines(),
		Records:   records,
	}

	if report.Empty() {
		responses.Success(c, http.StatusOK, data, printer.NoSales(publisher))
		return
	}
	responses.Success(c, http.StatusOK, data, "Sales report generated successfully")
}
