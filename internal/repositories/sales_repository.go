package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bookstore-report/internal/models"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// FindByPublisher returns every sale of the publisher's books across all
// shops, oldest first.
func (r *SalesRepository) FindByPublisher(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error) {
	var records []models.SaleRecord
	if err := salesByPublisher(r.db.WithContext(ctx), filter).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	return records, nil
}

func salesByPublisher(tx *gorm.DB, filter models.PublisherFilter) *gorm.DB {
	q := tx.Table("shops").
		Select("books.title AS title, shops.name AS shop_name, sales.price AS price, sales.date AS date").
		Joins("JOIN stocks ON stocks.shop_id = shops.id").
		Joins("JOIN books ON books.id = stocks.book_id").
		Joins("JOIN publishers ON publishers.id = books.publisher_id").
		Joins("JOIN sales ON sales.stock_id = stocks.id")

	if filter.Kind == models.FilterByID {
		q = q.Where("publishers.id = ?", filter.ID)
	} else {
		q = q.Where("publishers.name = ?", filter.Name)
	}

	return q.Order("sales.date, sales.id")
}
