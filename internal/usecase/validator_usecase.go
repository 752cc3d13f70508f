package usecase

import (
	"time"

	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
	"github.com/ishaan-vashist/YC-News-validator/pkg/relativetime"
)

const titleSnippetLen = 50

// Validator checks that a scraped sequence is ordered newest-first.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate walks every adjacent pair of the sequence. A single reference
// instant, captured once per call, resolves all relative ages so comparisons
// within the pass are consistent. Pairs where either side has no age text are
// excluded from both tallies. A sequence of length 0 or 1 is trivially valid.
func (v *Validator) Validate(articles []entity.Article) entity.ValidationResult {
	now := time.Now()
	issues := make([]entity.ValidationIssue, 0)
	validCount := 0

	for i := 0; i+1 < len(articles); i++ {
		current, next := articles[i], articles[i+1]

		currentTime, okCurrent := relativetime.Parse(current.RawTime, now)
		nextTime, okNext := relativetime.Parse(next.RawTime, now)
		if !okCurrent || !okNext {
			continue
		}

		// Newest-first: the current article must not be strictly older
		// than the one below it.
		if currentTime.Before(nextTime) {
			issues = append(issues, entity.ValidationIssue{
				Position: i + 1,
				Current:  transitionSide(current),
				Next:     transitionSide(next),
			})
		} else {
			validCount++
		}
	}

	return entity.ValidationResult{
		TotalArticles:    len(articles),
		ValidTransitions: validCount,
		Issues:           issues,
		IsValid:          len(issues) == 0,
	}
}

func transitionSide(a entity.Article) entity.TransitionSide {
	return entity.TransitionSide{
		Rank:  a.Rank,
		Time:  a.RawTime,
		Title: truncateTitle(a.Title),
	}
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > titleSnippetLen {
		runes = runes[:titleSnippetLen]
	}
	return string(runes) + "..."
}
