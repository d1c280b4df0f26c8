package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookstore-report/internal/database"
	"bookstore-report/internal/models"
)

// CatalogRepository writes publishers, books, shops, stocks and sales.
// The report itself never writes; the seeder and tests do.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *CatalogRepository) Transaction(ctx context.Context, fn func(repo *CatalogRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogRepository{db: tx})
	})
}

func (r *CatalogRepository) CountPublishers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Publisher{}).Count(&count).Error
	return count, err
}

// Reset empties every table and restarts their id sequences.
func (r *CatalogRepository) Reset(ctx context.Context) error {
	tables := database.Tables()
	return r.db.WithContext(ctx).
		Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
}

func (r *CatalogRepository) CreatePublisher(ctx context.Context, publisher *models.Publisher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(publisher).Error
}

func (r *CatalogRepository) CreateBook(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error
}

func (r *CatalogRepository) CreateShop(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(shop).Error
}

func (r *CatalogRepository) CreateStock(ctx context.Context, stock *models.Stock) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(stock).Error
}

func (r *CatalogRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(sale).Error
}
