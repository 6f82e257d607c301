package follow

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/logs"
	"github.com/Brideshead/api-final-yatube/internal/user"
)

// GetFollowing GET /api/follow?search=
//
// Ne retourne que les abonnements dont le demandeur est le follower.
func GetFollowing(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")

	follows, err := ListByFollower(followerID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des abonnements"})
		logs.LogJSON("ERROR", "Error retrieving follows", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}

	responses := make([]FollowResponse, 0, len(follows))
	for _, f := range follows {
		responses = append(responses, ToFollowResponse(f))
	}

	c.JSON(http.StatusOK, gin.H{"follows": responses})
}

// FollowUser POST /api/follow
//
// Le follower est toujours le principal authentifié, un champ "user"
// fourni par le client est ignoré. Ordre de validation : champ requis,
// utilisateur résolvable, auto-abonnement, doublon — l'auto-abonnement
// est donc toujours signalé comme tel, jamais comme doublon.
func FollowUser(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")

	var input struct {
		Following string `json:"following"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Following == "" {
		c.JSON(http.StatusBadRequest, gin.H{"following": "Ce champ est obligatoire"})
		return
	}

	followed, err := user.FindByUsername(input.Following)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Error resolving followed user", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}
	if followed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"following": "Utilisateur inexistant"})
		return
	}

	if followerID == followed.ID {
		c.JSON(http.StatusBadRequest, gin.H{"following": "Impossible de se suivre soi-même"})
		logs.LogJSON("WARN", "Impossible to follow yourself", map[string]interface{}{
			"route":  route,
			"userID": followerID,
		})
		return
	}

	alreadyFollowing, err := IsFollowing(followerID, followed.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		return
	}
	if alreadyFollowing {
		c.JSON(http.StatusBadRequest, gin.H{"following": "Déjà abonné à cet auteur"})
		logs.LogJSON("WARN", "Already followed", map[string]interface{}{
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followingID : %s", followed.ID),
		})
		return
	}

	var follower user.User
	if err := database.DB.First(&follower, "id = ?", followerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Error loading follower", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}

	newFollow := Follow{
		ID:          uuid.New().String(),
		UserID:      followerID,
		FollowingID: followed.ID,
	}

	if err := database.DB.Create(&newFollow).Error; err != nil {
		// L'index unique sur la paire tranche les créations concurrentes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"following": "Déjà abonné à cet auteur"})
			logs.LogJSON("WARN", "Already followed", map[string]interface{}{
				"route":  route,
				"userID": followerID,
				"extra":  fmt.Sprintf("followingID : %s", followed.ID),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout du follow"})
		logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followingID : %s", followed.ID),
		})
		return
	}

	newFollow.User = follower
	newFollow.Following = *followed

	c.JSON(http.StatusCreated, gin.H{"follow": ToFollowResponse(newFollow)})
	logs.LogJSON("INFO", "Followed user", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("followingID : %s", followed.ID),
	})
}
