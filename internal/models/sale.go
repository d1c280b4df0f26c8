package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a recorded transaction against a stock entry. Date is a calendar
// date; only its year, month and day are meaningful.
type Sale struct {
	ID      int64           `gorm:"primaryKey" json:"id"`
	StockID int64           `gorm:"not null;index" json:"stock_id"`
	Price   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Date    time.Time       `gorm:"type:date;not null" json:"date"`
	Stock   *Stock          `gorm:"foreignKey:StockID;references:ID" json:"stock,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleRecord is one row of the publisher sales report.
type SaleRecord struct {
	Title    string          `gorm:"column:title" json:"title"`
	ShopName string          `gorm:"column:shop_name" json:"shop_name"`
	Price    decimal.Decimal `gorm:"column:price" json:"price"`
	Date     time.Time       `gorm:"column:date" json:"date"`
}
