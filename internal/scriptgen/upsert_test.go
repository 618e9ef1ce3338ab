package scriptgen

import (
	"testing"

	"content-studio/database"
	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/script"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newIdea(t *testing.T, db *gorm.DB) *ideas.Idea {
	t.Helper()
	name := "Test Idea"
	idea := &ideas.Idea{
		IdeaName:   &name,
		RawContent: "Hello World",
		Status:     ideas.StatusDraft,
	}
	require.NoError(t, db.Create(idea).Error)
	return idea
}

func TestCommitBreakdown(t *testing.T) {
	payloadV1 := map[string]any{
		"script_breakdown": map[string]any{
			"scenes": []any{map[string]any{"id": float64(1), "description": "Intro"}},
		},
	}
	payloadV2 := map[string]any{
		"script_breakdown": map[string]any{
			"scenes": []any{map[string]any{"id": float64(1), "description": "Better Intro"}},
		},
	}

	t.Run("creates breakdown, transitions status, logs", func(t *testing.T) {
		db := setupDB(t)
		idea := newIdea(t, db)

		breakdown, err := CommitBreakdown(db, idea, payloadV1, Params{
			Variant:        VariantPacing,
			TargetPlatform: "YouTube",
			GlobalMood:     "Upbeat",
			TargetAudience: "Developers",
		})
		require.NoError(t, err)
		assert.Equal(t, ideas.StatusScript, idea.Status)

		var stored script.Breakdown
		require.NoError(t, db.First(&stored, "idea_id = ?", idea.ID).Error)
		assert.Equal(t, breakdown.ID, stored.ID)
		assert.Equal(t, "V2_Pacing", stored.PromptUsed)
		require.NotNil(t, stored.TargetAudience)
		assert.Equal(t, "Developers", *stored.TargetAudience)

		scene, err := SceneAt(stored.BreakdownData, 0)
		require.NoError(t, err)
		assert.Equal(t, "Intro", scene["description"])

		var reloaded ideas.Idea
		require.NoError(t, db.First(&reloaded, "content_id = ?", idea.ID).Error)
		assert.Equal(t, ideas.StatusScript, reloaded.Status)

		var logs []ideas.Log
		require.NoError(t, db.Where("idea_id = ?", idea.ID).Find(&logs).Error)
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Action, "V2_Pacing")
	})

	t.Run("second generation overwrites in place", func(t *testing.T) {
		db := setupDB(t)
		idea := newIdea(t, db)

		_, err := CommitBreakdown(db, idea, payloadV1, Params{Variant: VariantAnalytical, TargetPlatform: "YouTube", GlobalMood: "Calm"})
		require.NoError(t, err)
		_, err = CommitBreakdown(db, idea, payloadV2, Params{Variant: VariantNarrative, TargetPlatform: "TikTok", GlobalMood: "Tense"})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&script.Breakdown{}).Where("idea_id = ?", idea.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		var stored script.Breakdown
		require.NoError(t, db.First(&stored, "idea_id = ?", idea.ID).Error)
		assert.Equal(t, "V3_Narrative", stored.PromptUsed)
		assert.Equal(t, "TikTok", stored.TargetPlatform)

		scene, err := SceneAt(stored.BreakdownData, 0)
		require.NoError(t, err)
		assert.Equal(t, "Better Intro", scene["description"])
	})

	t.Run("failed commit rolls back status and breakdown", func(t *testing.T) {
		db := setupDB(t)
		idea := newIdea(t, db)

		// Make the final log insert fail so the whole unit must roll back.
		require.NoError(t, db.Migrator().DropTable(&ideas.Log{}))

		_, err := CommitBreakdown(db, idea, payloadV1, Params{Variant: VariantPacing, TargetPlatform: "YouTube", GlobalMood: "Upbeat"})
		require.ErrorIs(t, err, ErrPersistence)

		var reloaded ideas.Idea
		require.NoError(t, db.First(&reloaded, "content_id = ?", idea.ID).Error)
		assert.Equal(t, ideas.StatusDraft, reloaded.Status)

		var count int64
		require.NoError(t, db.Model(&script.Breakdown{}).Where("idea_id = ?", idea.ID).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}
