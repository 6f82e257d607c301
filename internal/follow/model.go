package follow

import (
	"time"

	"github.com/Brideshead/api-final-yatube/internal/user"
)

// Un utilisateur ne peut suivre un auteur qu'une seule fois : la paire
// (user_id, following_id) porte un index unique, arbitre final en cas
// de requêtes concurrentes.
type Follow struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UserID      string    `gorm:"type:uuid;uniqueIndex:idx_follow_pair"`
	User        user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FollowingID string    `gorm:"type:uuid;uniqueIndex:idx_follow_pair"`
	Following   user.User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

type FollowResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Following string    `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

func ToFollowResponse(f Follow) FollowResponse {
	return FollowResponse{
		ID:        f.ID,
		User:      f.User.Username,
		Following: f.Following.Username,
		CreatedAt: f.CreatedAt,
	}
}
