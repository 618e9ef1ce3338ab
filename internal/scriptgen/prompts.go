package scriptgen

import (
	"strings"

	"github.com/ollama/ollama/api"
)

// Variant selects the framing of the generation prompt. All variants mandate
// the same strict-JSON output shape; they differ only in emphasis.
type Variant string

const (
	VariantAnalytical Variant = "V1_Analytical"
	VariantPacing     Variant = "V2_Pacing"
	VariantNarrative  Variant = "V3_Narrative"
)

// Variants lists the selectable prompt variants in their canonical order.
func Variants() []Variant {
	return []Variant{VariantAnalytical, VariantPacing, VariantNarrative}
}

const systemPrompt = "You are an expert script structure analyst. Your task is to analyze the user's raw idea " +
	"and output a structured script breakdown in **JSON format only**. " +
	"Adhere to the JSON schema strictly and do not include any text outside of the JSON block."

const promptAnalytical = `**Role:** Senior Content Strategist and Structural Analyst.

**Task:** Deconstruct the provided RAW CONTENT into a logically sequenced **scene-by-scene structural outline** that serves as the primary blueprint for a human scriptwriter.

**Context:**
Analyze the content idea specifically for a **{target_platform}** video, referencing the core inputs:
1. IDEA NAME: {idea_name}
2. GLOBAL MOOD: {global_mood}
3. RAW CONTENT:
---
{raw_content}
---

**Reasoning:** The breakdown must serve as the primary blueprint for a human writer, ensuring content coverage and logical flow. The breakdown must divide the raw content into discrete, narrative scenes, assigning a realistic estimated word count for pacing and suggested visual direction.

**Output Format:** Strict **JSON object** adhering to the required ScriptBreakdown schema. The JSON structure should look like: {"script_breakdown": {"scenes": [...]}}

**Stop Conditions:** End output immediately after the closing } of the JSON object. Do not include any introductory, concluding, or explanatory text.`

const promptPacing = `**Role:** Expert Film Editor specializing in content pacing and viewer retention.

**Task:** Generate a tightly-paced breakdown that prioritizes **viewer engagement and retention** by assigning precise word counts and time blocks.

**Context:**
The content is intended for **{target_platform}**. The length and pacing constraints of this platform must heavily influence the breakdown.
1. IDEA NAME: {idea_name}
2. GLOBAL MOOD: {global_mood}
3. RAW CONTENT:
---
{raw_content}
---

**Reasoning:** Pacing is critical for the {target_platform}. Word counts must reflect desired on-screen time for optimal rhythm. Each scene's suggested **word_count** must be carefully calculated to reflect the desired on-screen time.

**Output Format:** Strict **JSON object** adhering to the required ScriptBreakdown schema, with emphasis on the word_count field for each scene. The JSON structure should look like: {"script_breakdown": {"scenes": [...]}}

**Stop Conditions:** Provide *only* the JSON object. No preamble, commentary, or explanation is permitted before or after the JSON block.`

const promptNarrative = `**Role:** Creative Director and Narrative Architect.

**Task:** Craft a **high-impact narrative breakdown** focusing on a strong hook and clear conclusion based on the content.

**Context:**
Utilize the raw content to build a compelling story for **{target_platform}**. The narrative must align with the requested **{global_mood}**.
1. IDEA NAME: {idea_name}
2. GLOBAL MOOD: {global_mood}
3. RAW CONTENT:
---
{raw_content}
---

**Reasoning:** Every successful video requires a compelling narrative arc: Hook, Body, and strong Conclusion/CTA. The breakdown must align with the {global_mood} and deliver maximum value in each segment.

**Output Format:** Strict **JSON object** adhering to the required ScriptBreakdown schema. The JSON must explicitly outline the content for the opening hook and final call-to-action. The JSON structure should look like: {"script_breakdown": {"scenes": [...]}}

**Stop Conditions:** Halt generation immediately after the complete JSON structure is outputted.`

// Canonical maps any requested variant onto a selectable one, mirroring the
// fallback BuildMessages applies.
func Canonical(v Variant) Variant {
	switch v {
	case VariantPacing, VariantNarrative:
		return v
	}
	return VariantAnalytical
}

// BuildMessages renders the chosen prompt variant with the idea's attributes
// substituted and returns the system/user instruction pair. An unrecognized
// variant falls back to the analytical variant; this is policy, not an error.
func BuildMessages(variant Variant, ideaName, globalMood, rawContent, targetPlatform string) []api.Message {
	var template string
	switch variant {
	case VariantPacing:
		template = promptPacing
	case VariantNarrative:
		template = promptNarrative
	default:
		template = promptAnalytical
	}

	userPrompt := strings.NewReplacer(
		"{idea_name}", ideaName,
		"{global_mood}", globalMood,
		"{raw_content}", rawContent,
		"{target_platform}", targetPlatform,
	).Replace(template)

	return []api.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
}
