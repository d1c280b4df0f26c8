package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bookstore-report/internal/i18n"
	"bookstore-report/internal/models"
)

const (
	titleWidth = 40
	shopWidth  = 10
	priceWidth = 8
	dateLayout = "02-01-2006"
)

type Report struct {
	Input   string
	Filter  models.PublisherFilter
	Records []models.SaleRecord
}

func (r *Report) Empty() bool {
	return len(r.Records) == 0
}

func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		lines = append(lines, FormatLine(rec))
	}
	return lines
}

// Render writes the report lines, or the localized no-sales notice.
func (r *Report) Render(w io.Writer, p *i18n.Printer) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, p.NoSales(r.Input))
		return err
	}
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine pads each column to a minimum width; longer values are not cut.
// fmt measures width in runes, so Cyrillic titles line up too.
func FormatLine(rec models.SaleRecord) string {
	return fmt.Sprintf("%-*s | %-*s | %-*s | %s",
		titleWidth, rec.Title,
		shopWidth, rec.ShopName,
		priceWidth, FormatPrice(rec.Price),
		rec.Date.Format(dateLayout),
	)
}

// FormatPrice prints the shortest decimal form, keeping at least one
// fractional digit: 19.99, 19.9, 20.0.
func FormatPrice(price decimal.Decimal) string {
	s := price.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
