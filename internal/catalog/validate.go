package catalog

import (
	"fmt"
	"strings"
)

// MinOptions is the smallest option list a choice or scenario question may carry.
const MinOptions = 2

// validateQuestions performs all structural checks on the given question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		return fmt.Errorf("catalog validation failed:\n  catalog has no questions")
	}

	idSet := make(map[string]bool, len(questions))
	sectionSet := make(map[Section]bool)

	for i, q := range questions {
		prefix := fmt.Sprintf("question %q", q.ID)
		if q.ID == "" {
			prefix = fmt.Sprintf("question #%d", i+1)
			errs = append(errs, fmt.Sprintf("%s: empty ID", prefix))
		} else if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if !q.Section.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown section %q", prefix, q.Section))
		} else {
			sectionSet[q.Section] = true
		}

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty prompt", prefix))
		}

		switch q.Type {
		case TypeScale:
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Sprintf("%s: scale questions must not have options", prefix))
			}
		case TypeChoice, TypeScenario:
			// Option indices are normalized against the scale maximum, so more
			// options than scale points would push scores above 100.
			if n := len(q.Options); n < MinOptions || n > MaxScaleValue {
				errs = append(errs, fmt.Sprintf("%s: %s questions need %d-%d options, got %d",
					prefix, q.Type, MinOptions, MaxScaleValue, n))
			}
			for j, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, j+1))
				}
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown answer type %q", prefix, q.Type))
		}

		if q.Weight < 0 {
			errs = append(errs, fmt.Sprintf("%s: weight must be >= 0, got %g", prefix, q.Weight))
		}
	}

	for _, s := range AllSections() {
		if !sectionSet[s] {
			errs = append(errs, fmt.Sprintf("section %q has no questions", s))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
