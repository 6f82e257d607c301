package follow

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Brideshead/api-final-yatube/internal/database"
)

// IsFollowing indique si la paire (follower, following) existe déjà.
func IsFollowing(followerID, followingID string) (bool, error) {
	var f Follow
	err := database.DB.
		Where("user_id = ? AND following_id = ?", followerID, followingID).
		First(&f).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil // L'utilisateur ne suit pas
		}
		return false, err // Une erreur s'est produite
	}

	return true, nil // L'utilisateur suit
}

// ListByFollower retourne les abonnements du follower, filtrés si besoin
// par sous-chaîne sur le username suivi.
func ListByFollower(followerID, search string) ([]Follow, error) {
	query := database.DB.
		Preload("User").
		Preload("Following").
		Where("user_id = ?", followerID).
		Order("created_at DESC")

	if search != "" {
		var ids []string
		if err := database.DB.Table("users").
			Where("username ILIKE ?", "%"+search+"%").
			Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		query = query.Where("following_id IN ?", ids)
	}

	var follows []Follow
	if err := query.Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
