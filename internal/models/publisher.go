package models

// Publisher matches the publishers table
type Publisher struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Books []Book `gorm:"foreignKey:PublisherID" json:"books,omitempty"`
}

func (Publisher) TableName() string {
	return "publishers"
}
