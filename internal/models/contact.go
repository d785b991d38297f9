package models

import "time"

// Contact belongs to exactly one User via Username.
type Contact struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:100;not null;index" json:"-"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  *string   `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User      User      `gorm:"foreignKey:Username;references:Username" json:"-"`
	Addresses []Address `gorm:"foreignKey:ContactID" json:"-"`
}

func (Contact) TableName() string {
	return "contacts"
}
