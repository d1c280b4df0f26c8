package services

import (
	"context"
	"fmt"
	"strconv"

	"bookstore-report/internal/models"
	"bookstore-report/internal/utils"
)

// SalesFinder is satisfied by repositories.SalesRepository.
type SalesFinder interface {
	FindByPublisher(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error)
}

type ReportService struct {
	sales SalesFinder
}

func NewReportService(sales SalesFinder) *ReportService {
	return &ReportService{sales: sales}
}

// ParsePublisherFilter treats all-digit input as a publisher id and anything
// else, including the empty string, as an exact publisher name.
func ParsePublisherFilter(input string) models.PublisherFilter {
	if !utils.IsDigits(input) {
		return models.PublisherFilter{Kind: models.FilterByName, Name: input}
	}

	// publishers.id is a 32-bit serial
	id, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return models.PublisherFilter{Kind: models.FilterByID, OutOfRange: true}
	}
	return models.PublisherFilter{Kind: models.FilterByID, ID: id}
}

// Generate builds the sales report for a publisher id or name.
func (s *ReportService) Generate(ctx context.Context, input string) (*Report, error) {
	filter := ParsePublisherFilter(input)
	report := &Report{Input: input, Filter: filter}

	if filter.OutOfRange {
		return report, nil
	}

	records, err := s.sales.FindByPublisher(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build report for publisher %q: %w", input, err)
	}
	report.Records = records
	return report, nil
}
