package storyboard

type GenerateImageRequest struct {
	Ratio            string  `json:"ratio"`
	NegativePrompt   *string `json:"negative_prompt"`
	CameraStyle      *string `json:"camera_style"`
	PromptTemplateID *uint   `json:"prompt_template_id"`
}
