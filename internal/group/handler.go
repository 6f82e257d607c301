package group

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/logs"
)

// GetAllGroups GET /api/groups
//
// Lecture seule, ouverte aux visiteurs anonymes. La création passe par
// les routes admin.
func GetAllGroups(c *gin.Context) {
	var groups []Group
	if err := database.DB.Order("title ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des groupes"})
		logs.LogJSON("ERROR", "Error retrieving groups", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroupByID GET /api/groups/:id
func GetGroupByID(c *gin.Context) {
	groupID := c.Param("id")

	var g Group
	if err := database.DB.First(&g, "id = ?", groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Groupe non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": g})
}
