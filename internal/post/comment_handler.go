package post

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/logs"
	"github.com/Brideshead/api-final-yatube/internal/permission"
)

// getParentPost résout le post parent du chemin. Toute opération sur les
// commentaires échoue en 404 si le post n'existe pas, jamais en liste vide.
func getParentPost(c *gin.Context) (*Post, bool) {
	postID := c.Param("id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return nil, false
	}
	return &p, true
}

// GetCommentsByPostID GET /api/posts/:id/comments
func GetCommentsByPostID(c *gin.Context) {
	p, ok := getParentPost(c)
	if !ok {
		return
	}

	var comments []Comment
	if err := database.DB.Preload("Author").
		Where("post_id = ?", p.ID).
		Order("created ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": ToCommentResponses(comments)})
}

// GetCommentByID GET /api/posts/:id/comments/:comment_id
func GetCommentByID(c *gin.Context) {
	p, ok := getParentPost(c)
	if !ok {
		return
	}

	var cm Comment
	if err := database.DB.Preload("Author").
		First(&cm, "id = ? AND post_id = ?", c.Param("comment_id"), p.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": ToCommentResponse(cm)})
}

// CreateComment POST /api/posts/:id/comments
//
// L'auteur et le post sont posés côté serveur, les valeurs client sont
// ignorées.
func CreateComment(c *gin.Context) {
	route := c.FullPath()

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	p, ok := getParentPost(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"text": "Le texte est obligatoire"})
		return
	}

	comment := Comment{
		ID:       uuid.New().String(),
		AuthorID: userID.(string),
		PostID:   p.ID,
		Text:     input.Text,
		Created:  time.Now(),
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
		logs.LogJSON("ERROR", "Error creating comment", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": p.ID,
		})
		return
	}

	database.DB.First(&comment.Author, "id = ?", comment.AuthorID)

	c.JSON(http.StatusCreated, gin.H{"comment": ToCommentResponse(comment)})
}

// UpdateComment PUT/PATCH /api/posts/:id/comments/:comment_id
func UpdateComment(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	p, ok := getParentPost(c)
	if !ok {
		return
	}

	var cm Comment
	if err := database.DB.Preload("Author").
		First(&cm, "id = ? AND post_id = ?", c.Param("comment_id"), p.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire non trouvé"})
		return
	}

	if !permission.CanModify(c.Request.Method, userID, cm.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seul l'auteur peut modifier ce commentaire"})
		logs.LogJSON("WARN", "Non-author tried to update comment", map[string]interface{}{
			"route":     route,
			"userID":    userID,
			"commentID": cm.ID,
		})
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"text": "Le texte est obligatoire"})
		return
	}

	cm.Text = input.Text
	if err := database.DB.Model(&cm).Update("text", cm.Text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du commentaire"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": ToCommentResponse(cm)})
}

// DeleteComment DELETE /api/posts/:id/comments/:comment_id
func DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")

	p, ok := getParentPost(c)
	if !ok {
		return
	}

	var cm Comment
	if err := database.DB.First(&cm, "id = ? AND post_id = ?", c.Param("comment_id"), p.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire non trouvé"})
		return
	}

	if !permission.CanModify(c.Request.Method, userID, cm.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seul l'auteur peut supprimer ce commentaire"})
		return
	}

	if err := database.DB.Delete(&cm).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du commentaire"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commentaire supprimé avec succès"})
}
