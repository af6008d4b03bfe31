package domain

import "time"

// User is an account that can own videos. Token is the API token
// issued at registration and presented as "Authorization: Token <t>".
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex:idx_users_username" json:"username"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Token        string    `gorm:"type:text;not null;uniqueIndex:idx_users_token" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}
