package storyboard

import "time"

// SceneImage is one generated storyboard frame for (idea, scene index).
// When IsDeleted is true the primary file reference must be cleared and
// TrashFile must point at the relocated bytes.
type SceneImage struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IdeaID uint `gorm:"not null;index" json:"idea_id"`

	SceneIndex int `gorm:"not null" json:"scene_index"`

	FullPrompt     string  `gorm:"type:text;not null" json:"full_prompt"`
	NegativePrompt *string `gorm:"type:text" json:"negative_prompt,omitempty"`
	CameraStyle    *string `gorm:"size:255" json:"camera_style,omitempty"`

	ImageFile *string `json:"image_file,omitempty"`
	TrashFile *string `json:"trash_file,omitempty"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
}
