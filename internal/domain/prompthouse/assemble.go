package prompthouse

import (
	"fmt"
	"sort"
	"strings"
)

// Assemble renders the template into its final markdown prompt. Rules,
// reasoning steps and dynamic fields must already be loaded on the receiver.
func (t *PromptTemplate) Assemble() string {
	parts := []string{
		"# ROLE",
		fmt.Sprintf("You are %s.", strings.TrimSpace(t.RoleText)),
	}

	parts = append(parts, "\n## TASK", strings.TrimSpace(t.TaskText))

	if (t.ContextText != nil && *t.ContextText != "") || len(t.DynamicFields) > 0 {
		parts = append(parts, "\n## CONTEXT")
		if t.ContextText != nil && *t.ContextText != "" {
			parts = append(parts, strings.TrimSpace(*t.ContextText))
		}
		if len(t.DynamicFields) > 0 {
			parts = append(parts, "\nFixed Parameters (Apply to every image):")
			fields := make([]DynamicField, len(t.DynamicFields))
			copy(fields, t.DynamicFields)
			sort.SliceStable(fields, func(i, j int) bool {
				if fields[i].SortOrder != fields[j].SortOrder {
					return fields[i].SortOrder < fields[j].SortOrder
				}
				return fields[i].LabelKey < fields[j].LabelKey
			})
			for _, f := range fields {
				parts = append(parts, fmt.Sprintf("%s: %s", f.LabelKey, strings.TrimSpace(f.FieldValue)))
			}
		}
	}

	if len(t.ReasoningSteps) > 0 {
		parts = append(parts, "\n## REASONING")
		for i, step := range t.ReasoningSteps {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(step.Text)))
		}
	}

	if len(t.Rules) > 0 {
		parts = append(parts, "\n# RULES")
		for _, rule := range t.Rules {
			parts = append(parts, fmt.Sprintf("- %s", strings.TrimSpace(rule.Text)))
		}
	}

	if t.OutputFormat != nil && *t.OutputFormat != "" {
		parts = append(parts, "\n## OUTPUT FORMAT", strings.TrimSpace(*t.OutputFormat))
	}

	if t.StopConditions != nil && *t.StopConditions != "" {
		parts = append(parts, "\n## STOP CONDITIONS", strings.TrimSpace(*t.StopConditions))
	}

	return strings.Join(parts, "\n")
}
