package prompthouse

type RuleInput struct {
	Name     string `json:"name" binding:"required"`
	Text     string `json:"text" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type StepInput struct {
	Name     string `json:"name" binding:"required"`
	Text     string `json:"text" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type DynamicFieldInput struct {
	LabelKey   string `json:"label_key" binding:"required"`
	FieldValue string `json:"field_value" binding:"required"`
	SortOrder  int    `json:"sort_order"`
}

type CreateTemplateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`

	RoleText       string  `json:"role_text" binding:"required"`
	TaskText       string  `json:"task_text" binding:"required"`
	ContextText    *string `json:"context_text"`
	OutputFormat   *string `json:"output_format"`
	StopConditions *string `json:"stop_conditions"`

	RuleIDs       []uint              `json:"rule_ids"`
	StepIDs       []uint              `json:"step_ids"`
	DynamicFields []DynamicFieldInput `json:"dynamic_fields"`
}

type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`

	RoleText       *string `json:"role_text"`
	TaskText       *string `json:"task_text"`
	ContextText    *string `json:"context_text"`
	OutputFormat   *string `json:"output_format"`
	StopConditions *string `json:"stop_conditions"`

	RuleIDs       []uint              `json:"rule_ids"`
	StepIDs       []uint              `json:"step_ids"`
	DynamicFields []DynamicFieldInput `json:"dynamic_fields"`
}
