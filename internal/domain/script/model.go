package script

import (
	"time"
)

// Breakdown holds the structured generation result for one idea.
// The payload shape ({"script_breakdown":{"scenes":[...]}}) is established by
// the prompt, not enforced here.
type Breakdown struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IdeaID uint `gorm:"not null;uniqueIndex" json:"idea_id"`

	BreakdownData map[string]any `gorm:"type:jsonb;serializer:json;not null" json:"breakdown_data"`

	PromptUsed     string  `gorm:"size:50;not null" json:"prompt_used"`
	TargetPlatform string  `gorm:"size:50;not null" json:"target_platform"`
	GlobalMood     string  `gorm:"size:50;not null" json:"global_mood"`
	TargetAudience *string `gorm:"size:255" json:"target_audience,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
