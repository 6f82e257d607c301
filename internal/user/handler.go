package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/logs"
	"github.com/Brideshead/api-final-yatube/internal/storage"
)

// GetMe GET /api/me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}})
}

// GetUserByUsername GET /api/users/:username
func GetUserByUsername(c *gin.Context) {
	route := c.FullPath()
	username := c.Param("username")

	var u User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		logs.LogJSON("WARN", "User not found", map[string]interface{}{
			"route":    route,
			"username": username,
		})
		return
	}

	var followersCount, followingCount int64
	if err := database.DB.Table("follows").Where("following_id = ?", u.ID).Count(&followersCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des statistiques"})
		logs.LogJSON("ERROR", "Error counting followers", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"username": username,
		})
		return
	}
	if err := database.DB.Table("follows").Where("user_id = ?", u.ID).Count(&followingCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des statistiques"})
		logs.LogJSON("ERROR", "Error counting follows", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"username": username,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       u.ID,
			"username": u.Username,
		},
		"stats": gin.H{
			"followers_count": followersCount,
			"following_count": followingCount,
		},
	})
}

// DeleteMe DELETE /api/me
//
// Les posts, commentaires et abonnements (dans les deux sens) partent
// avec le compte via les contraintes ON DELETE CASCADE.
func DeleteMe(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	// Supprimer d'abord les images S3 des posts de l'utilisateur
	var imageURLs []string
	database.DB.Table("posts").Where("author_id = ? AND image_url <> ''", userID).Pluck("image_url", &imageURLs)
	for _, url := range imageURLs {
		urlParts := strings.Split(url, ".amazonaws.com/")
		if len(urlParts) > 1 {
			if err := storage.DeleteFromS3(urlParts[1]); err != nil {
				logs.LogJSON("WARN", "Error deleting post image from S3", map[string]interface{}{
					"error":  err.Error(),
					"route":  route,
					"userID": userID,
				})
			}
		}
	}

	if err := database.DB.Delete(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression du compte"})
		logs.LogJSON("ERROR", "Error deleting account", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compte supprimé"})
	logs.LogJSON("INFO", "Account deleted", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}
