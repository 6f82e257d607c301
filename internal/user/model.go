package user

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username" gorm:"uniqueIndex"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"-"`
}
