package scripts

type GenerateScriptRequest struct {
	TargetPlatform string `json:"target_platform" binding:"required"`
	GlobalMood     string `json:"global_mood" binding:"required"`
	PromptVersion  string `json:"llm_prompt_version"`
	TargetAudience string `json:"target_audience"`

	// Accepted for forward compatibility; generation does not consume it yet.
	MaxWordCount int `json:"max_word_count"`
}

type UpdateSceneRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}
