package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/group"
	"github.com/Brideshead/api-final-yatube/internal/logs"
)

// CreateGroup POST /api/admin/groups
//
// Les groupes ne sont créés et supprimés que par les admins.
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.Title == "" || input.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Titre et slug obligatoires"})
		return
	}

	var count int64
	database.DB.Model(&group.Group{}).Where("slug = ?", input.Slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"slug": "Slug déjà utilisé"})
		return
	}

	newGroup := group.Group{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := database.DB.Create(&newGroup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du groupe"})
		logs.LogJSON("ERROR", "Error creating group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": newGroup})
	logs.LogJSON("INFO", "Group created", map[string]interface{}{
		"route":   route,
		"userID":  userID,
		"groupID": newGroup.ID,
	})
}

// DeleteGroup DELETE /api/admin/groups/:id
//
// Les posts du groupe survivent : leur group_id repasse à NULL via la
// contrainte ON DELETE SET NULL.
func DeleteGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	groupID := c.Param("id")

	var g group.Group
	if err := database.DB.First(&g, "id = ?", groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Groupe non trouvé"})
		return
	}

	if err := database.DB.Delete(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du groupe"})
		logs.LogJSON("ERROR", "Error deleting group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Groupe supprimé avec succès"})
	logs.LogJSON("INFO", "Group deleted", map[string]interface{}{
		"route":   route,
		"userID":  userID,
		"groupID": groupID,
	})
}

// GetDashboardStats GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	var totalUsers, totalGroups, totalPosts, totalComments, totalFollows int64

	database.DB.Table("users").Count(&totalUsers)
	database.DB.Table("groups").Count(&totalGroups)
	database.DB.Table("posts").Count(&totalPosts)
	database.DB.Table("comments").Count(&totalComments)
	database.DB.Table("follows").Count(&totalFollows)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"users":    totalUsers,
			"groups":   totalGroups,
			"posts":    totalPosts,
			"comments": totalComments,
			"follows":  totalFollows,
		},
	})
}
