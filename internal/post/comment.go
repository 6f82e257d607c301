package post

import (
	"time"

	"github.com/Brideshead/api-final-yatube/internal/user"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;type:uuid"`
	AuthorID string    `gorm:"type:uuid;index"`
	Author   user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PostID   string    `gorm:"type:uuid;index"`
	Post     Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Text     string    `gorm:"type:text"`
	Created  time.Time `gorm:"index"`
}
