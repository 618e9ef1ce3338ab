package ideas

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"content-studio/database"
	"content-studio/internal/domain/ideas"
	"content-studio/internal/ingest"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var sanitizer = bluemonday.StrictPolicy()

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /ideas
// ------------------------------
func ListIdeas(c *gin.Context) {
	var rows []ideas.Idea
	if err := ideasQuery(database.DB, false).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ideas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ideas": rows})
}

// ------------------------------
// GET /ideas/all  (recovery view: trashed rows included)
// ------------------------------
func ListAllIdeas(c *gin.Context) {
	var rows []ideas.Idea
	if err := ideasQuery(database.DB, true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ideas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ideas": rows})
}

// ------------------------------
// POST /ideas  (multipart submission: pasted text or uploaded file)
// ------------------------------
func SubmitIdea(c *gin.Context) {
	ideaName := strings.TrimSpace(c.PostForm("idea_name"))
	pasted := strings.TrimSpace(sanitizer.Sanitize(c.PostForm("raw_content")))

	var (
		rawContent string
		sourceType string
		sourceData string
	)

	// When both a file and pasted text are present the file wins.
	file, err := c.FormFile("uploaded_file")
	if err == nil && file != nil {
		f, openErr := file.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Submission failed", "details": openErr.Error()})
			return
		}
		defer f.Close()

		text, extractErr := ingest.ExtractText(file.Filename, f)
		if extractErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Submission failed", "details": extractErr.Error()})
			return
		}
		rawContent = text
		sourceType = ideas.SourceFile
		sourceData = file.Filename
	} else if pasted != "" {
		rawContent = pasted
		sourceType = ideas.SourceText
		sourceData = "Pasted Content"
	}

	if rawContent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission failed", "details": "Please paste content or upload a valid file."})
		return
	}

	var idea ideas.Idea
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		idea = ideas.Idea{
			RawContent: rawContent,
			Status:     ideas.StatusDraft,
		}
		if ideaName != "" {
			idea.IdeaName = &ideaName
		}
		if err := tx.Create(&idea).Error; err != nil {
			return err
		}

		desc := fmt.Sprintf("Initial content captured from %s", sourceData)
		source := ideas.Source{
			IdeaID:      idea.ID,
			SourceType:  sourceType,
			SourceData:  sourceData,
			Description: &desc,
		}
		if err := tx.Create(&source).Error; err != nil {
			return err
		}

		return tx.Create(&ideas.Log{
			IdeaID: idea.ID,
			Actor:  actorFrom(c),
			Action: "Idea Recorded",
		}).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": idea.ID, "status": idea.Status})
}

// ------------------------------
// GET /ideas/:id
// ------------------------------
func GetIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var idea ideas.Idea
	err := ideasQuery(database.DB, false).
		Preload("Breakdown").
		Preload("Sources").
		Preload("SceneImages", "is_deleted = ?", false).
		First(&idea, "content_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// ------------------------------
// PUT /ideas/:id
// ------------------------------
func UpdateIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != nil && !validStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status %q", *req.Status)})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var idea ideas.Idea
		if err := ideasQuery(tx, false).First(&idea, "content_id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		var changed []string

		if req.IdeaName != nil {
			updates["idea_name"] = *req.IdeaName
			changed = append(changed, "idea_name")
		}
		if req.RawContent != nil {
			updates["raw_content"] = *req.RawContent
			changed = append(changed, "raw_content")
		}
		if req.PrimaryImage != nil {
			updates["primary_image"] = *req.PrimaryImage
			changed = append(changed, "primary_image")
		}

		var statusLog string
		if req.Status != nil && *req.Status != idea.Status {
			updates["status"] = *req.Status
			statusLog = fmt.Sprintf("Status changed from '%s' to '%s'", idea.Status, *req.Status)
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&ideas.Idea{}).
			Where("content_id = ?", idea.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		action := statusLog
		if len(changed) > 0 {
			fieldLog := fmt.Sprintf("Updated: %s", strings.Join(changed, ", "))
			if action == "" {
				action = fieldLog
			} else {
				action = action + " and " + fieldLog
			}
		}

		return tx.Create(&ideas.Log{
			IdeaID: idea.ID,
			Actor:  actorFrom(c),
			Action: action,
		}).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// GET /ideas/:id/logs
// ------------------------------
func GetIdeaLogs(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := findIdea(database.DB, id, true); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	var logs []ideas.Log
	if err := database.DB.
		Where("idea_id = ?", id).
		Order("timestamp ASC").
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func validStatus(s string) bool {
	switch s {
	case ideas.StatusDraft, ideas.StatusResearch, ideas.StatusScript,
		ideas.StatusProduction, ideas.StatusPublished, ideas.StatusArchived,
		ideas.StatusDuplicate:
		return true
	}
	return false
}

// actorFrom picks up the operator identity supplied by the (external) auth
// layer, when present.
func actorFrom(c *gin.Context) *string {
	actor := strings.TrimSpace(c.GetHeader("X-Actor"))
	if actor == "" {
		return nil
	}
	return &actor
}
