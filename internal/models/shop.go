package models

type Shop struct {
	ID     int64   `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"type:text;not null" json:"name"`
	Stocks []Stock `gorm:"foreignKey:ShopID" json:"stocks,omitempty"`
}

func (Shop) TableName() string {
	return "shops"
}
