package ideas

import (
	"content-studio/internal/domain/ideas"

	"gorm.io/gorm"
)

// ideasQuery scopes idea lookups. Trashed rows are excluded unless the caller
// asks for them explicitly; there is no implicit default-manager filtering.
func ideasQuery(db *gorm.DB, includeDeleted bool) *gorm.DB {
	q := db.Model(&ideas.Idea{})
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	return q
}

func findIdea(db *gorm.DB, id uint, includeDeleted bool) (*ideas.Idea, error) {
	var idea ideas.Idea
	if err := ideasQuery(db, includeDeleted).First(&idea, "content_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}
