package models

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNegativeCount = errors.New("stock count cannot be negative")

// Stock is a book being available at a shop with a quantity.
type Stock struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	BookID int64  `gorm:"not null;index" json:"book_id"`
	ShopID int64  `gorm:"not null;index" json:"shop_id"`
	Count  int    `gorm:"not null" json:"count"`
	Book   *Book  `gorm:"foreignKey:BookID;references:ID" json:"book,omitempty"`
	Shop   *Shop  `gorm:"foreignKey:ShopID;references:ID" json:"shop,omitempty"`
	Sales  []Sale `gorm:"foreignKey:StockID" json:"sales,omitempty"`
}

func (Stock) TableName() string {
	return "stocks"
}

func (s *Stock) BeforeSave(tx *gorm.DB) (err error) {
	return s.Validate()
}

func (s *Stock) Validate() error {
	if s.Count < 0 {
		return ErrNegativeCount
	}
	return nil
}
