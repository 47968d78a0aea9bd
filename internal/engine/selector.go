package engine

import (
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
)

const (
	languageWeight  = 10
	frameworkWeight = 5

	// The fallback loses one point after scoring so that any template with
	// a real match beats it on what would otherwise be a tie.
	fallbackPenalty = 1
)

// FindBestMatch scores every catalog template against the detected
// languages and frameworks and returns the winner. Ties go to the template
// that appears first in catalog order. When nothing scores at all, the
// fallback template is returned outright.
func FindBestMatch(c *catalog.Catalog, languages, frameworks []string) (*catalog.Template, error) {
	fallback := c.Fallback()
	if fallback == nil {
		return nil, ErrNoTemplateMatch
	}

	var (
		best      *catalog.Template
		bestScore int
		anyMatch  bool
	)

	for _, tpl := range c.List(nil) {
		score := rawScore(tpl, languages, frameworks)
		if score > 0 {
			anyMatch = true
		}
		if tpl == fallback {
			score -= fallbackPenalty
		}
		if best == nil || score > bestScore {
			best = tpl
			bestScore = score
		}
	}

	if !anyMatch {
		return fallback, nil
	}

	return best, nil
}

func rawScore(tpl *catalog.Template, languages, frameworks []string) int {
	score := 0
	for _, lang := range languages {
		if tpl.HasLanguage(lang) {
			score += languageWeight
		}
	}
	for _, fw := range frameworks {
		if tpl.HasFramework(fw) {
			score += frameworkWeight
		}
	}
	return score
}
