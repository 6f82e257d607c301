package post

import (
	"time"

	"github.com/Brideshead/api-final-yatube/internal/group"
	"github.com/Brideshead/api-final-yatube/internal/user"
)

type Post struct {
	ID       string       `gorm:"primaryKey;type:uuid"`
	Text     string       `gorm:"type:text"`
	PubDate  time.Time    `gorm:"index"`
	AuthorID string       `gorm:"type:uuid;index"`
	Author   user.User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *string      `gorm:"type:uuid"`
	Group    *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	ImageURL string
}
