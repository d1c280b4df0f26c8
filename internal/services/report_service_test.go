package services

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bookstore-report/internal/i18n"
	"bookstore-report/internal/models"
)

type MockSalesFinder struct {
	FindByPublisherFunc func(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error)
	Calls               []models.PublisherFilter
}

func (m *MockSalesFinder) FindByPublisher(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error) {
	m.Calls = append(m.Calls, filter)
	if m.FindByPublisherFunc != nil {
		return m.FindByPublisherFunc(ctx, filter)
	}
	return nil, nil
}

func duneRecord() models.SaleRecord {
	return models.SaleRecord{
		Title:    "Dune",
		ShopName: "Downtown",
		Price:    decimal.RequireFromString("19.99"),
		Date:     time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

// penguinCatalog answers for publisher "Penguin" with id 1.
func penguinCatalog() *MockSalesFinder {
	return &MockSalesFinder{
		FindByPublisherFunc: func(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error) {
			if (filter.Kind == models.FilterByID && filter.ID == 1) ||
				(filter.Kind == models.FilterByName && filter.Name == "Penguin") {
				return []models.SaleRecord{duneRecord()}, nil
			}
			return nil, nil
		},
	}
}

func TestParsePublisherFilter(t *testing.T) {
	testCases := []struct {
		input string
		want  models.PublisherFilter
	}{
		{input: "1", want: models.PublisherFilter{Kind: models.FilterByID, ID: 1}},
		{input: "007", want: models.PublisherFilter{Kind: models.FilterByID, ID: 7}},
		{input: "2147483647", want: models.PublisherFilter{Kind: models.FilterByID, ID: 2147483647}},
		{input: "2147483648", want: models.PublisherFilter{Kind: models.FilterByID, OutOfRange: true}},
		{input: "99999999999999999999999", want: models.PublisherFilter{Kind: models.FilterByID, OutOfRange: true}},
		{input: "Penguin", want: models.PublisherFilter{Kind: models.FilterByName, Name: "Penguin"}},
		{input: " 1", want: models.PublisherFilter{Kind: models.FilterByName, Name: " 1"}},
		{input: "-1", want: models.PublisherFilter{Kind: models.FilterByName, Name: "-1"}},
		{input: "", want: models.PublisherFilter{Kind: models.FilterByName, Name: ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParsePublisherFilter(tc.input); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParsePublisherFilter(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestGenerateByIDAndNameGiveSameLine(t *testing.T) {
	svc := NewReportService(penguinCatalog())
	want := "Dune                                     | Downtown   | 19.99    | 01-05-2023"

	for _, input := range []string{"Penguin", "1"} {
		report, err := svc.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate(%q) failed: %v", input, err)
		}
		lines := report.Lines()
		if len(lines) != 1 || lines[0] != want {
			t.Errorf("Generate(%q) lines = %q, want [%q]", input, lines, want)
		}
	}
}

func TestGeneratePassesFilterToRepository(t *testing.T) {
	finder := &MockSalesFinder{}
	svc := NewReportService(finder)

	if _, err := svc.Generate(context.Background(), "42"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Generate(context.Background(), "Penguin"); err != nil {
		t.Fatal(err)
	}

	want := []models.PublisherFilter{
		{Kind: models.FilterByID, ID: 42},
		{Kind: models.FilterByName, Name: "Penguin"},
	}
	if !reflect.DeepEqual(finder.Calls, want) {
		t.Errorf("repository calls = %+v, want %+v", finder.Calls, want)
	}
}

func TestGenerateOutOfRangeIDSkipsQuery(t *testing.T) {
	finder := &MockSalesFinder{}
	svc := NewReportService(finder)

	report, err := svc.Generate(context.Background(), "99999999999")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !report.Empty() {
		t.Error("expected an empty report")
	}
	if len(finder.Calls) != 0 {
		t.Errorf("expected no repository calls, got %d", len(finder.Calls))
	}
}

func TestGenerateWrapsRepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewReportService(&MockSalesFinder{
		FindByPublisherFunc: func(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error) {
			return nil, dbErr
		},
	})

	report, err := svc.Generate(context.Background(), "Penguin")
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
	if report != nil {
		t.Errorf("expected no report on error, got %+v", report)
	}
}

func TestRenderNoSales(t *testing.T) {
	svc := NewReportService(penguinCatalog())

	report, err := svc.Generate(context.Background(), "Unknown Press")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, i18n.NewPrinter("ru")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got, want := buf.String(), "Нет продаж для издателя 'Unknown Press'.\n"; got != want {
		t.Errorf("Render output = %q, want %q", got, want)
	}
}

func TestRenderLines(t *testing.T) {
	second := duneRecord()
	second.ShopName = "Riverside"
	second.Price = decimal.RequireFromString("21.50")
	second.Date = time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC)

	report := &Report{Input: "1", Records: []models.SaleRecord{duneRecord(), second}}

	var buf bytes.Buffer
	if err := report.Render(&buf, i18n.NewPrinter("ru")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "Dune                                     | Downtown   | 19.99    | 01-05-2023\n" +
		"Dune                                     | Riverside  | 21.5     | 12-06-2023\n"
	if got := buf.String(); got != want {
		t.Errorf("Render output mismatch\nwant: %q\ngot:  %q", want, got)
	}
}
