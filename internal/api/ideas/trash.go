package ideas

import (
	"net/http"

	"content-studio/database"
	"content-studio/internal/domain/ideas"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// POST /ideas/:id/trash  (soft delete; no hard-delete path exists)
// ------------------------------
func TrashIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		idea, err := findIdea(tx, id, true)
		if err != nil {
			return err
		}

		if err := tx.Model(&ideas.Idea{}).
			Where("content_id = ?", idea.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		return tx.Create(&ideas.Log{
			IdeaID: idea.ID,
			Actor:  actorFrom(c),
			Action: "Idea moved to Trash (Soft Delete)",
		}).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to trash idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "trashed"})
}

// ------------------------------
// POST /ideas/:id/restore
// ------------------------------
func RestoreIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		idea, err := findIdea(tx, id, true)
		if err != nil {
			return err
		}

		if err := tx.Model(&ideas.Idea{}).
			Where("content_id = ?", idea.ID).
			Update("is_deleted", false).Error; err != nil {
			return err
		}

		return tx.Create(&ideas.Log{
			IdeaID: idea.ID,
			Actor:  actorFrom(c),
			Action: "Idea restored from Trash",
		}).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

// ------------------------------
// POST /ideas/restore  (bulk recovery; one log row per restored idea)
// ------------------------------
func BulkRestoreIdeas(c *gin.Context) {
	var req BulkRestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restored := 0
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var rows []ideas.Idea
		if err := tx.Where("content_id IN ?", req.IdeaIDs).Find(&rows).Error; err != nil {
			return err
		}

		for _, idea := range rows {
			if err := tx.Model(&ideas.Idea{}).
				Where("content_id = ?", idea.ID).
				Update("is_deleted", false).Error; err != nil {
				return err
			}
			if err := tx.Create(&ideas.Log{
				IdeaID: idea.ID,
				Actor:  actorFrom(c),
				Action: "Idea restored from Trash",
			}).Error; err != nil {
				return err
			}
			restored++
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore ideas", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": restored})
}
