package models

// Book matches the books table. PublisherID is nullable.
type Book struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	PublisherID *int64     `gorm:"index" json:"publisher_id,omitempty"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID;references:ID" json:"publisher,omitempty"`
	Stocks      []Stock    `gorm:"foreignKey:BookID" json:"stocks,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
