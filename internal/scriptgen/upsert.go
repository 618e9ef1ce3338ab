package scriptgen

import (
	"errors"
	"fmt"

	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/script"

	"gorm.io/gorm"
)

// Params carries the generation parameters that end up on the breakdown row.
type Params struct {
	Variant        Variant
	TargetPlatform string
	GlobalMood     string
	TargetAudience string
	Actor          string
}

// CommitBreakdown persists a parsed generation result as one all-or-nothing
// unit: upsert the idea's single breakdown, move the idea to the Script
// status, and append the audit log row. If any step fails the transaction
// rolls back and the idea is left exactly as it was.
func CommitBreakdown(db *gorm.DB, idea *ideas.Idea, payload map[string]any, p Params) (*script.Breakdown, error) {
	var breakdown script.Breakdown

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("idea_id = ?", idea.ID).First(&breakdown).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			breakdown = script.Breakdown{IdeaID: idea.ID}
		}

		breakdown.BreakdownData = payload
		breakdown.PromptUsed = string(p.Variant)
		breakdown.TargetPlatform = p.TargetPlatform
		breakdown.GlobalMood = p.GlobalMood
		if p.TargetAudience != "" {
			audience := p.TargetAudience
			breakdown.TargetAudience = &audience
		}

		if err := tx.Save(&breakdown).Error; err != nil {
			return err
		}

		if err := tx.Model(&ideas.Idea{}).
			Where("content_id = ?", idea.ID).
			Update("status", ideas.StatusScript).Error; err != nil {
			return err
		}

		logRow := ideas.Log{
			IdeaID: idea.ID,
			Action: fmt.Sprintf("Successfully generated and saved Script Breakdown using %s.", p.Variant),
		}
		if p.Actor != "" {
			actor := p.Actor
			logRow.Actor = &actor
		}
		return tx.Create(&logRow).Error
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrPersistence, err, err)
	}

	idea.Status = ideas.StatusScript
	return &breakdown, nil
}
