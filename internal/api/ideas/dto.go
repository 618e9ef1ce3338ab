package ideas

// ---------- requests

type UpdateIdeaRequest struct {
	IdeaName     *string `json:"idea_name"`
	RawContent   *string `json:"raw_content"`
	Status       *string `json:"status"`
	PrimaryImage *string `json:"primary_image"`
}

type BulkRestoreRequest struct {
	IdeaIDs []uint `json:"idea_ids" binding:"required"`
}
