package ideas

import (
	"time"

	"content-studio/internal/domain/script"
	"content-studio/internal/domain/storyboard"
)

// Workflow statuses for an idea.
const (
	StatusDraft      = "Draft"
	StatusResearch   = "Research"
	StatusScript     = "Script"
	StatusProduction = "Production"
	StatusPublished  = "Published"
	StatusArchived   = "Archived"
	StatusDuplicate  = "Duplicate"
)

const (
	SourceText = "Text"
	SourceFile = "File"
	SourceURL  = "URL"
)

type Idea struct {
	ID uint `gorm:"column:content_id;primaryKey" json:"id"`

	IdeaName   *string `gorm:"size:255" json:"idea_name,omitempty"`
	RawContent string  `gorm:"type:text;not null" json:"raw_content"`

	Status string `gorm:"size:50;not null;default:'Draft'" json:"status"`

	PrimaryImage *string `json:"primary_image,omitempty"`

	// Soft delete flag; trashed ideas stay addressable for recovery.
	IsDeleted bool `gorm:"not null;default:false;index" json:"is_deleted"`

	Breakdown *script.Breakdown `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE;" json:"breakdown,omitempty"`

	Sources     []Source                `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE;" json:"sources,omitempty"`
	Logs        []Log                   `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE;" json:"logs,omitempty"`
	SceneImages []storyboard.SceneImage `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE;" json:"scene_images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Source records where an idea's raw content came from. Write-once.
type Source struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IdeaID uint `gorm:"not null;index" json:"idea_id"`

	SourceType  string  `gorm:"size:10;not null" json:"source_type"`
	SourceData  string  `gorm:"type:text;not null" json:"source_data"`
	Description *string `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Log is the append-only audit trail. Rows are never updated or removed.
type Log struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IdeaID uint `gorm:"not null;index" json:"idea_id"`

	Actor  *string `gorm:"size:255" json:"actor,omitempty"`
	Action string  `gorm:"type:text;not null" json:"action"`

	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
