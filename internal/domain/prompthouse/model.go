package prompthouse

import "time"

// PromptRule is a non-negotiable constraint, rendered in the # RULES section.
type PromptRule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Text     string `gorm:"type:text;not null" json:"text"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromptStep is one internal reasoning step, rendered in the ## REASONING section.
type PromptStep struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Text     string `gorm:"type:text;not null" json:"text"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DynamicField is an ordered key-value pair attached to a template, rendered
// as a fixed parameter in the ## CONTEXT section.
type DynamicField struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TemplateID uint `gorm:"not null;index" json:"template_id"`

	LabelKey   string `gorm:"size:100;not null" json:"label_key"`
	FieldValue string `gorm:"type:text;not null" json:"field_value"`
	SortOrder  int    `gorm:"not null;default:0" json:"sort_order"`
}

// PromptTemplate is the main structured template: fixed markdown sections plus
// reusable rules, reasoning steps and dynamic fields.
type PromptTemplate struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	RoleText       string  `gorm:"type:text;not null" json:"role_text"`
	TaskText       string  `gorm:"type:text;not null" json:"task_text"`
	ContextText    *string `gorm:"type:text" json:"context_text,omitempty"`
	OutputFormat   *string `gorm:"type:text" json:"output_format,omitempty"`
	StopConditions *string `gorm:"type:text" json:"stop_conditions,omitempty"`

	Rules          []PromptRule   `gorm:"many2many:prompt_template_rules;" json:"rules,omitempty"`
	ReasoningSteps []PromptStep   `gorm:"many2many:prompt_template_steps;" json:"reasoning_steps,omitempty"`
	DynamicFields  []DynamicField `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE;" json:"dynamic_fields,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
