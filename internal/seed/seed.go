// Package seed loads a demo catalog into an empty bookstore database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bookstore-report/internal/models"
	"bookstore-report/internal/repositories"
)

// Entry is one stock line: a book at a shop, with the sales made from it.
// An empty Publisher leaves the book without one.
type Entry struct {
	Publisher string
	Title     string
	Shop      string
	Count     int
	Sales     []SaleEntry
}

type SaleEntry struct {
	Price string
	Date  string // YYYY-MM-DD
}

// Summary counts the rows Load inserted.
type Summary struct {
	Publishers int
	Books      int
	Shops      int
	Stocks     int
	Sales      int
}

// Demo is the catalog written by cmd/seed. Penguin gets id 1 on a fresh database.
func Demo() []Entry {
	return []Entry{
		{Publisher: "Penguin", Title: "Dune", Shop: "Downtown", Count: 5, Sales: []SaleEntry{
			{Price: "19.99", Date: "2023-05-01"},
		}},
		{Publisher: "Penguin", Title: "Dune", Shop: "Riverside", Count: 2, Sales: []SaleEntry{
			{Price: "21.50", Date: "2023-06-12"},
		}},
		{Publisher: "Penguin", Title: "Nineteen Eighty-Four", Shop: "Downtown", Count: 7, Sales: []SaleEntry{
			{Price: "12.00", Date: "2023-07-03"},
			{Price: "11.90", Date: "2023-08-19"},
		}},
		{Publisher: "Эксмо", Title: "Мастер и Маргарита", Shop: "Книжный", Count: 10, Sales: []SaleEntry{
			{Price: "450.00", Date: "2023-02-14"},
		}},
		{Publisher: "O'Reilly Media", Title: "Learning Go", Shop: "Riverside", Count: 3, Sales: []SaleEntry{
			{Price: "39.99", Date: "2024-01-20"},
		}},
		{Publisher: "Quiet Press", Title: "Unsold Stories", Shop: "Downtown", Count: 4},
		{Title: "Anonymous Pamphlet", Shop: "Downtown", Count: 1, Sales: []SaleEntry{
			{Price: "1.00", Date: "2023-03-03"},
		}},
	}
}

// Load inserts entries through repo, reusing publishers, books and shops that
// share a name. Callers wanting atomicity run it inside repo.Transaction.
func Load(ctx context.Context, repo *repositories.CatalogRepository, entries []Entry) (Summary, error) {
	var sum Summary

	publishers := make(map[string]*models.Publisher)
	books := make(map[string]*models.Book)
	shops := make(map[string]*models.Shop)

	for i, e := range entries {
		var publisherID *int64
		if e.Publisher != "" {
			p, ok := publishers[e.Publisher]
			if !ok {
				p = &models.Publisher{Name: e.Publisher}
				if err := repo.CreatePublisher(ctx, p); err != nil {
					return sum, fmt.Errorf("entry %d: failed to create publisher: %w", i, err)
				}
				publishers[e.Publisher] = p
				sum.Publishers++
			}
			publisherID = &p.ID
		}

		bookKey := e.Publisher + "\x00" + e.Title
		b, ok := books[bookKey]
		if !ok {
			b = &models.Book{Title: e.Title, PublisherID: publisherID}
			if err := repo.CreateBook(ctx, b); err != nil {
				return sum, fmt.Errorf("entry %d: failed to create book: %w", i, err)
			}
			books[bookKey] = b
			sum.Books++
		}

		s, ok := shops[e.Shop]
		if !ok {
			s = &models.Shop{Name: e.Shop}
			if err := repo.CreateShop(ctx, s); err != nil {
				return sum, fmt.Errorf("entry %d: failed to create shop: %w", i, err)
			}
			shops[e.Shop] = s
			sum.Shops++
		}

		stock := &models.Stock{BookID: b.ID, ShopID: s.ID, Count: e.Count}
		if err := repo.CreateStock(ctx, stock); err != nil {
			return sum, fmt.Errorf("entry %d: failed to create stock: %w", i, err)
		}
		sum.Stocks++

		for _, se := range e.Sales {
			sale, err := se.toModel(stock.ID)
			if err != nil {
				return sum, fmt.Errorf("entry %d: %w", i, err)
			}
			if err := repo.CreateSale(ctx, sale); err != nil {
				return sum, fmt.Errorf("entry %d: failed to create sale: %w", i, err)
			}
			sum.Sales++
		}
	}

	return sum, nil
}

func (se SaleEntry) toModel(stockID int64) (*models.Sale, error) {
	price, err := decimal.NewFromString(se.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price %q: %w", se.Price, err)
	}
	date, err := time.Parse(time.DateOnly, se.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid sale date %q: %w", se.Date, err)
	}
	return &models.Sale{StockID: stockID, Price: price, Date: date}, nil
}
