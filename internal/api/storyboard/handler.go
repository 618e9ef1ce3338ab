package storyboard

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"content-studio/database"
	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/prompthouse"
	"content-studio/internal/domain/script"
	"content-studio/internal/domain/storyboard"
	"content-studio/internal/imagegen"
	"content-studio/internal/mediastore"
	"content-studio/internal/scriptgen"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Renderer and Media are the process-wide collaborators, wired up in main.
var (
	Renderer *imagegen.Client
	Media    *mediastore.Store
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// POST /ideas/:id/scenes/:index/image
// ------------------------------
func GenerateSceneImage(c *gin.Context) {
	ideaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scene index"})
		return
	}

	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea ideas.Idea
	if err := database.DB.Where("is_deleted = ?", false).
		First(&idea, "content_id = ?", ideaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	var breakdown script.Breakdown
	if err := database.DB.Where("idea_id = ?", ideaID).First(&breakdown).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such scene for this idea"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load breakdown"})
		return
	}

	scene, err := scriptgen.SceneAt(breakdown.BreakdownData, index)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such scene for this idea"})
		return
	}

	prompt, err := buildScenePrompt(scene, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build prompt", "details": err.Error()})
		return
	}

	data, err := Renderer.Render(c.Request.Context(), prompt, req.Ratio)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Could not render the storyboard image.",
			"details": err.Error(),
		})
		return
	}

	rel := fmt.Sprintf("idea_%d/scene_%d_%s.png", ideaID, index, uuid.NewString())
	stored, err := Media.Save(rel, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image", "details": err.Error()})
		return
	}

	var image storyboard.SceneImage
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		image = storyboard.SceneImage{
			IdeaID:         ideaID,
			SceneIndex:     index,
			FullPrompt:     prompt,
			NegativePrompt: req.NegativePrompt,
			CameraStyle:    req.CameraStyle,
			ImageFile:      &stored,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
		return tx.Create(&ideas.Log{
			IdeaID: ideaID,
			Action: fmt.Sprintf("Generated storyboard image for scene %d", index),
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image record", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": image.ID, "image_file": stored})
}

// buildScenePrompt combines the scene's own description with the fixed visual
// parameters of an optional prompt-house template.
func buildScenePrompt(scene map[string]any, req GenerateImageRequest) (string, error) {
	var parts []string
	for _, key := range []string{"description", "action_summary", "location_suggestion", "local_mood"} {
		if v, ok := scene[key].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "Storyboard frame")
	}
	if req.CameraStyle != nil && *req.CameraStyle != "" {
		parts = append(parts, *req.CameraStyle)
	}

	if req.PromptTemplateID != nil {
		var tmpl prompthouse.PromptTemplate
		err := database.DB.
			Preload("DynamicFields").
			First(&tmpl, "id = ?", *req.PromptTemplateID).Error
		if err != nil {
			return "", fmt.Errorf("load prompt template: %w", err)
		}
		for _, f := range tmpl.DynamicFields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.LabelKey, f.FieldValue))
		}
	}

	return strings.Join(parts, ", "), nil
}

// ------------------------------
// POST /images/:id/trash
// ------------------------------
// The file copy must land in the trash area before the primary reference is
// cleared; a failed copy leaves the image active with its file intact.
func TrashSceneImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var image storyboard.SceneImage
	if err := database.DB.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}

	if image.IsDeleted {
		c.JSON(http.StatusOK, gin.H{"status": "trashed"})
		return
	}

	updates := map[string]interface{}{"is_deleted": true}

	if image.ImageFile != nil && *image.ImageFile != "" {
		trashName, err := Media.MoveToTrash(*image.ImageFile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to move image to trash. The image was left untouched.",
				"details": err.Error(),
			})
			return
		}
		updates["image_file"] = nil
		updates["trash_file"] = trashName
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&storyboard.SceneImage{}).
			Where("id = ?", image.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		return tx.Create(&ideas.Log{
			IdeaID: image.IdeaID,
			Action: fmt.Sprintf("Storyboard image for scene %d moved to Trash", image.SceneIndex),
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to trash image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "trashed"})
}
