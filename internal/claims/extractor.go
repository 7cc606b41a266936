// Package claims holds the language-model stages of the verification
// pipeline and their deterministic fallbacks: claim extraction, claim
// analysis, and content rewriting.
package claims

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"verifact/internal/ai"
	"verifact/internal/model"
	"verifact/internal/textutil"
)

const maxFallbackClaims = 3

// Extractor pulls candidate factual claims out of free text via the
// model service. When the model is unavailable or returns unusable
// output it yields nothing; the orchestrator then applies FallbackExtract.
type Extractor struct {
	model ai.Client
	log   *slog.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(m ai.Client) *Extractor {
	return &Extractor{model: m, log: slog.Default().With("component", "claim-extractor")}
}

type claimsEnvelope struct {
	Claims []model.Claim `json:"claims"`
}

// Extract asks the model for claims as JSON. Unusable output is not a
// hard error: the result is simply empty.
func (e *Extractor) Extract(ctx context.Context, text string, now time.Time) ([]model.Claim, error) {
	prompt := extractionPrompt(text, now)
	out, err := e.model.Generate(ctx, prompt, 0.2)
	if err != nil {
		return nil, fmt.Errorf("claims: extract: %w", err)
	}
	var env claimsEnvelope
	if err := decodeLoose(out, &env); err != nil {
		e.log.Warn("model returned no parseable claims", "err", err)
		return nil, nil
	}
	var claims []model.Claim
	for _, c := range env.Claims {
		c.ClaimText = strings.TrimSpace(c.ClaimText)
		if c.ClaimText == "" || len(c.SearchQueries) == 0 {
			continue
		}
		claims = append(claims, c)
	}
	return claims, nil
}

func extractionPrompt(text string, now time.Time) string {
	return fmt.Sprintf(`You are a fact-checking assistant. Today's date is %s.

Extract the verifiable factual claims from the text below. For each claim,
propose 2-3 web search queries that would find evidence for or against it.
Phrase any time-relative query ("last quarter", "this year") in absolute
terms using today's date.

Respond with ONLY a JSON object, no other text:
{"claims":[{"claimText":"...","searchQueries":["...","..."]}]}

Text:
%s`, now.Format("2006-01-02"), text)
}

var (
	numberPattern      = regexp.MustCompile(`\d+([.,]\d+)?%?`)
	prepositionPattern = regexp.MustCompile(`(?i)\b(in|on|at|of|by|from|during|since|until)\b`)
	beingVerbPattern   = regexp.MustCompile(`(?i)\b(is|are|was|were|has|have|had|will|became|become)\b`)
)

// FallbackExtract is the deterministic substitute for Extract: sentences
// of length [20,300) that look like factual statements, capped at 3,
// each with three derived search queries.
func FallbackExtract(text string, now time.Time) []model.Claim {
	var claims []model.Claim
	for _, sentence := range textutil.Sentences(text, 20) {
		if len(sentence) >= 300 {
			continue
		}
		if !looksFactual(sentence) {
			continue
		}
		claims = append(claims, model.Claim{
			ClaimText:     sentence,
			SearchQueries: fallbackQueries(sentence),
		})
		if len(claims) >= maxFallbackClaims {
			break
		}
	}
	return claims
}

// looksFactual keeps sentences containing a number or percentage, a
// preposition, or a being/having verb.
func looksFactual(sentence string) bool {
	return numberPattern.MatchString(sentence) ||
		prepositionPattern.MatchString(sentence) ||
		beingVerbPattern.MatchString(sentence)
}

// fallbackQueries derives three queries per claim: top keywords, a
// quoted leading substring, and keywords plus "fact check".
func fallbackQueries(sentence string) []string {
	keywords := textutil.Keywords(sentence, 3)
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}
	keywordQuery := strings.Join(keywords, " ")

	quoted := sentence
	if len(quoted) > 40 {
		quoted = textutil.Truncate(quoted, 40)
	}

	queries := []string{}
	if keywordQuery != "" {
		queries = append(queries, keywordQuery)
	}
	queries = append(queries, `"`+strings.TrimSpace(quoted)+`"`)
	if keywordQuery != "" {
		queries = append(queries, keywordQuery+" fact check")
	}
	return queries
}
