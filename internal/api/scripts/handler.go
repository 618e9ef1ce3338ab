package scripts

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"content-studio/database"
	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/script"
	"content-studio/internal/scriptgen"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Generator is the process-wide generation client, wired up in main.
var Generator *scriptgen.Client

var platforms = []string{"YouTube", "YouTube Shorts", "TikTok", "Instagram Reels", "Podcast"}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func loadIdea(c *gin.Context, id uint) (*ideas.Idea, bool) {
	var idea ideas.Idea
	err := database.DB.
		Where("is_deleted = ?", false).
		First(&idea, "content_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return nil, false
	}
	return &idea, true
}

// ------------------------------
// GET /ideas/:id/script/controls
// ------------------------------
func GetScriptControls(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	idea, ok := loadIdea(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idea_id":          idea.ID,
		"idea_name":        idea.IdeaName,
		"status":           idea.Status,
		"prompt_versions":  scriptgen.Variants(),
		"target_platforms": platforms,
	})
}

// ------------------------------
// POST /ideas/:id/script/generate
// ------------------------------
func GenerateScript(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	idea, ok := loadIdea(c, id)
	if !ok {
		return
	}

	var req GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ""
	if idea.IdeaName != nil {
		name = *idea.IdeaName
	}

	variant := scriptgen.Canonical(scriptgen.Variant(req.PromptVersion))
	messages := scriptgen.BuildMessages(variant, name, req.GlobalMood, idea.RawContent, req.TargetPlatform)

	raw, err := Generator.Generate(c.Request.Context(), messages)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Could not reach the generation service. Ensure it is running.",
			"details": err.Error(),
		})
		return
	}

	payload, err := scriptgen.ParseBreakdown(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "The model returned invalid JSON. Try adjusting the prompt constraints.",
			"details": err.Error(),
		})
		return
	}

	breakdown, err := scriptgen.CommitBreakdown(database.DB, idea, payload, scriptgen.Params{
		Variant:        variant,
		TargetPlatform: req.TargetPlatform,
		GlobalMood:     req.GlobalMood,
		TargetAudience: req.TargetAudience,
		Actor:          strings.TrimSpace(c.GetHeader("X-Actor")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Saving the breakdown failed. Idea state is unchanged.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       idea.Status,
		"breakdown_id": breakdown.ID,
	})
}

// ------------------------------
// PUT /ideas/:id/scenes/:index
// ------------------------------
func UpdateScene(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scene index"})
		return
	}

	var req UpdateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := loadIdea(c, id); !ok {
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var breakdown script.Breakdown
		if err := tx.Where("idea_id = ?", id).First(&breakdown).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return scriptgen.ErrInvalidSceneReference
			}
			return err
		}

		scene, err := scriptgen.SceneAt(breakdown.BreakdownData, index)
		if err != nil {
			return err
		}
		for k, v := range req.Fields {
			scene[k] = v
		}

		if err := tx.Model(&script.Breakdown{}).
			Where("id = ?", breakdown.ID).
			Update("breakdown_data", breakdown.BreakdownData).Error; err != nil {
			return err
		}

		return tx.Create(&ideas.Log{
			IdeaID: id,
			Action: "Updated scene " + strconv.Itoa(index),
		}).Error
	})

	if err != nil {
		if errors.Is(err, scriptgen.ErrInvalidSceneReference) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such scene for this idea"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update scene", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
