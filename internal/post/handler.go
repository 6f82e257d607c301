package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/group"
	"github.com/Brideshead/api-final-yatube/internal/logs"
	"github.com/Brideshead/api-final-yatube/internal/permission"
	"github.com/Brideshead/api-final-yatube/internal/storage"
)

// CreatePost gère la création d'un nouveau post avec image optionnelle
func CreatePost(c *gin.Context) {
	route := c.FullPath()

	// L'auteur vient toujours du middleware d'authentification : un champ
	// "author" fourni par le client n'est jamais lu.
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	text := c.PostForm("text")
	groupID := c.PostForm("group")

	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"text": "Le texte est obligatoire"})
		return
	}

	var groupRef *string
	if groupID != "" {
		var g group.Group
		if err := database.DB.First(&g, "id = ?", groupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"group": "Groupe inexistant"})
			return
		}
		groupRef = &g.ID
	}

	postID := uuid.New().String()

	// Upload de l'image si fournie
	var imageURL string
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		validExtensions := map[string]bool{
			".jpg": true, ".jpeg": true, ".png": true,
			".gif": true, ".webp": true, ".heic": true,
		}
		if !validExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"image": "Extension de fichier invalide"})
			return
		}

		filename := fmt.Sprintf("post_%s%s", postID, ext)
		contentType := header.Header.Get("Content-Type")

		imageURL, err = storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'upload", "details": err.Error()})
			return
		}
	}

	newPost := Post{
		ID:       postID,
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: userID.(string),
		GroupID:  groupRef,
		ImageURL: imageURL,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// Si l'insertion échoue, on tente de supprimer l'image déjà uploadée
		if imageURL != "" {
			urlParts := strings.Split(imageURL, ".amazonaws.com/")
			if len(urlParts) > 1 {
				_ = storage.DeleteFromS3(urlParts[1])
			}
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.LogJSON("ERROR", "Error creating post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	database.DB.First(&newPost.Author, "id = ?", newPost.AuthorID)

	c.JSON(http.StatusCreated, gin.H{"post": ToPostResponse(newPost)})
	logs.LogJSON("INFO", "Post created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
}

// GetAllPosts récupère les posts, du plus récent au plus ancien,
// avec pagination limit/offset optionnelle
func GetAllPosts(c *gin.Context) {
	var total int64
	if err := database.DB.Model(&Post{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		return
	}

	query := database.DB.Preload("Author").Order("pub_date DESC")

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"limit": "Paramètre limit invalide"})
			return
		}
		query = query.Limit(limit)

		if offsetStr := c.Query("offset"); offsetStr != "" {
			offset, err := strconv.Atoi(offsetStr)
			if err != nil || offset < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"offset": "Paramètre offset invalide"})
				return
			}
			query = query.Offset(offset)
		}
	}

	var posts []Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": total,
		"posts": ToPostResponses(posts),
	})
}

// GetPostByID récupère un post spécifique par son ID
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")

	var p Post
	if err := database.DB.Preload("Author").First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": ToPostResponse(p)})
}

// UpdatePost PUT/PATCH /api/posts/:id
//
// Seuls text et group sont modifiables. L'auteur et pub_date sont figés.
func UpdatePost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.Preload("Author").First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	if !permission.CanModify(c.Request.Method, userID, p.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seul l'auteur peut modifier ce post"})
		logs.LogJSON("WARN", "Non-author tried to update post", map[string]interface{}{
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	var input struct {
		Text  *string `json:"text"`
		Group *string `json:"group"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.Text != nil {
		if *input.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"text": "Le texte est obligatoire"})
			return
		}
		p.Text = *input.Text
	}

	if input.Group != nil {
		if *input.Group == "" {
			p.GroupID = nil
		} else {
			var g group.Group
			if err := database.DB.First(&g, "id = ?", *input.Group).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"group": "Groupe inexistant"})
				return
			}
			p.GroupID = &g.ID
		}
	}

	if err := database.DB.Model(&p).Select("text", "group_id").Updates(map[string]interface{}{
		"text":     p.Text,
		"group_id": p.GroupID,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": ToPostResponse(p)})
}

// DeletePost supprime un post
func DeletePost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	if !permission.CanModify(c.Request.Method, userID, p.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seul l'auteur peut supprimer ce post"})
		return
	}

	// Supprimer l'image S3 avant l'entrée en base
	if p.ImageURL != "" {
		urlParts := strings.Split(p.ImageURL, ".amazonaws.com/")
		if len(urlParts) > 1 {
			if err := storage.DeleteFromS3(urlParts[1]); err != nil {
				logs.LogJSON("WARN", "Error deleting image from S3", map[string]interface{}{
					"error":  err.Error(),
					"route":  route,
					"postID": postID,
				})
			}
		}
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post supprimé avec succès"})
	logs.LogJSON("INFO", "Post deleted", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
}
