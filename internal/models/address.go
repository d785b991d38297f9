package models

import "time"

// Address belongs to exactly one Contact. Street, city and province are
// nullable; country and postal code are required.
type Address struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID  uint      `gorm:"not null;index" json:"-"`
	Street     *string   `gorm:"size:255" json:"street"`
	City       *string   `gorm:"size:100" json:"city"`
	Province   *string   `gorm:"size:100" json:"province"`
	Country    string    `gorm:"size:100;not null" json:"country"`
	PostalCode string    `gorm:"size:10;not null" json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Contact Contact `gorm:"foreignKey:ContactID" json:"-"`
}

func (Address) TableName() string {
	return "addresses"
}
