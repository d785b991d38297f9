package models

import "time"

// User is identified by username. Token holds the single active bearer
// token and is NULL while the user is logged out.
type User struct {
	Username  string    `gorm:"size:100;primaryKey" json:"username"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Token     *string   `gorm:"size:100;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
