package scriptgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	t.Run("substitutes all placeholders", func(t *testing.T) {
		msgs := BuildMessages(VariantPacing, "My Idea", "Upbeat", "Hello World", "YouTube Shorts")
		require.Len(t, msgs, 2)

		assert.Equal(t, "system", msgs[0].Role)
		assert.Equal(t, systemPrompt, msgs[0].Content)

		assert.Equal(t, "user", msgs[1].Role)
		user := msgs[1].Content
		assert.Contains(t, user, "IDEA NAME: My Idea")
		assert.Contains(t, user, "GLOBAL MOOD: Upbeat")
		assert.Contains(t, user, "Hello World")
		assert.Contains(t, user, "YouTube Shorts")
		assert.NotContains(t, user, "{idea_name}")
		assert.NotContains(t, user, "{global_mood}")
		assert.NotContains(t, user, "{raw_content}")
		assert.NotContains(t, user, "{target_platform}")
	})

	t.Run("variant selects a distinct framing", func(t *testing.T) {
		analytical := BuildMessages(VariantAnalytical, "n", "m", "c", "p")[1].Content
		pacing := BuildMessages(VariantPacing, "n", "m", "c", "p")[1].Content
		narrative := BuildMessages(VariantNarrative, "n", "m", "c", "p")[1].Content

		assert.Contains(t, analytical, "Structural Analyst")
		assert.Contains(t, pacing, "Film Editor")
		assert.Contains(t, narrative, "Narrative Architect")
		assert.NotEqual(t, analytical, pacing)
		assert.NotEqual(t, pacing, narrative)
	})

	t.Run("unknown variant falls back to analytical", func(t *testing.T) {
		fallback := BuildMessages(Variant("V9_Unknown"), "n", "m", "c", "p")
		analytical := BuildMessages(VariantAnalytical, "n", "m", "c", "p")
		assert.Equal(t, analytical, fallback)
	})

	t.Run("canonical matches the fallback", func(t *testing.T) {
		assert.Equal(t, VariantAnalytical, Canonical(Variant("V9_Unknown")))
		assert.Equal(t, VariantAnalytical, Canonical(Variant("")))
		for _, v := range Variants() {
			assert.Equal(t, v, Canonical(v))
		}
	})

	t.Run("every variant mandates the JSON envelope", func(t *testing.T) {
		for _, v := range Variants() {
			user := BuildMessages(v, "n", "m", "c", "p")[1].Content
			assert.True(t, strings.Contains(user, `{"script_breakdown": {"scenes": [...]}}`), "variant %s", v)
		}
	})
}
