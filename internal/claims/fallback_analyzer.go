package claims

import (
	"regexp"
	"strings"

	"verifact/internal/model"
)

// knownFact is one entry of the declarative fallback table: a claim
// shape the offline analyzer recognizes with confidence, and the
// canonical fact for it. This is a narrow, intentionally limited safety
// net used only when the model service is entirely unavailable; it is
// not general knowledge.
type knownFact struct {
	entityPattern *regexp.Regexp
	canonicalFact string
	source        string
}

var knownFacts = []knownFact{
	{
		entityPattern: regexp.MustCompile(`(?i)\balbert einstein\b.*\b(born|birth)\b`),
		canonicalFact: "Albert Einstein was born on March 14, 1879",
		source:        "en.wikipedia.org/wiki/Albert_Einstein",
	},
	{
		entityPattern: regexp.MustCompile(`(?i)\bmarie curie\b.*\b(born|birth)\b`),
		canonicalFact: "Marie Curie was born on November 7, 1867",
		source:        "en.wikipedia.org/wiki/Marie_Curie",
	},
	{
		entityPattern: regexp.MustCompile(`(?i)\bisaac newton\b.*\b(born|birth)\b`),
		canonicalFact: "Isaac Newton was born on January 4, 1643",
		source:        "en.wikipedia.org/wiki/Isaac_Newton",
	},
	{
		entityPattern: regexp.MustCompile(`(?i)\beiffel tower\b.*\b(completed|built|opened)\b`),
		canonicalFact: "The Eiffel Tower was completed in March 1889",
		source:        "en.wikipedia.org/wiki/Eiffel_Tower",
	},
}

var dateLikePattern = regexp.MustCompile(`\b(\d{4}|\d{1,2}(st|nd|rd|th)?\s+(January|February|March|April|May|June|July|August|September|October|November|December)|(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2})\b`)

// FallbackAnalyze consults the declarative fact table for
// clearly-structured claims (entity plus date shape). It declines with
// nil for anything it cannot confidently match rather than guessing.
func FallbackAnalyze(claimText string) *model.Verdict {
	if !dateLikePattern.MatchString(claimText) {
		return nil
	}
	for _, f := range knownFacts {
		if !f.entityPattern.MatchString(claimText) {
			continue
		}
		status := model.StatusConfirms
		if !strings.Contains(claimText, extractYear(f.canonicalFact)) {
			status = model.StatusRefutes
		}
		return &model.Verdict{
			VerifiedFact: f.canonicalFact,
			Source:       f.source,
			Status:       status,
			Reasoning:    "Matched against the offline fact table",
		}
	}
	return nil
}

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

func extractYear(fact string) string {
	if y := yearPattern.FindString(fact); y != "" {
		return y
	}
	return fact
}
