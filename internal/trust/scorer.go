// Package trust computes multi-factor credibility scores for evidence
// sources: authority, content quality, ownership transparency, citation
// density, and bias, weighted into a single 0-100 measure.
package trust

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"verifact/internal/model"
	"verifact/internal/rank"
)

// Source is one input to the scorer. Title and Content may be empty.
type Source struct {
	URL     string
	Title   string
	Content string
}

// Component weights. They sum to 1.0.
const (
	weightAuthority = 0.30
	weightQuality   = 0.25
	weightOwnership = 0.20
	weightCitations = 0.15
	weightBias      = 0.10
)

const emptyExplanation = "No sources available for evaluation."

// Evaluate scores every source independently and aggregates them into a
// TrustScoreReport. Pure: same input always yields the same report.
func Evaluate(sources []Source) model.TrustScoreReport {
	if len(sources) == 0 {
		return model.TrustScoreReport{
			Overall:       0,
			SourceDetails: []model.SourceTrustReport{},
			Explanation:   emptyExplanation,
			TopSources:    []model.TopSource{},
		}
	}

	details := make([]model.SourceTrustReport, 0, len(sources))
	var weightedSum, weightSum float64
	for _, s := range sources {
		d := evaluateOne(s)
		details = append(details, d)
		w := math.Max(0.1, float64(componentScore(d, "Authority"))/100)
		weightedSum += float64(d.Overall) * w
		weightSum += w
	}
	overall := int(math.Round(weightedSum / weightSum))

	return model.TrustScoreReport{
		Overall:       overall,
		SourceDetails: details,
		Explanation:   explain(overall, details),
		SourceCount:   len(details),
		TopSources:    topSources(details, 3),
	}
}

// EvaluateOne scores a single source; the standalone source-analysis
// surface uses this directly.
func EvaluateOne(s Source) model.SourceTrustReport {
	return evaluateOne(s)
}

func evaluateOne(s Source) model.SourceTrustReport {
	domain := rank.Domain(s.URL)

	authority := rank.Score(domain)
	quality := scoreContentQuality(s.Content)
	ownership := scoreOwnership(domain, s.Content)
	citations := scoreCitations(s.Content)
	bias := scoreBias(s.Content)

	components := []model.TrustComponent{
		{Name: "Authority", Score: authority, Weight: weightAuthority,
			Description: "Domain reputation from the curated source table and TLD heuristics"},
		{Name: "ContentQuality", Score: quality, Weight: weightQuality,
			Description: "Length, prose structure, and factual-signal density"},
		{Name: "OwnershipTransparency", Score: ownership, Weight: weightOwnership,
			Description: "Disclosure of ownership, funding, and provenance"},
		{Name: "Citations", Score: citations, Weight: weightCitations,
			Description: "Density of references, links, and attributed statements"},
		{Name: "BiasAssessment", Score: bias, Weight: weightBias,
			Description: "Absence of emotionally loaded and politically skewed language"},
	}

	overall := 0.0
	for _, c := range components {
		overall += float64(c.Score) * c.Weight
	}

	return model.SourceTrustReport{
		Domain:          domain,
		URL:             s.URL,
		Title:           s.Title,
		Overall:         int(math.Round(overall)),
		Components:      components,
		OwnershipInfo:   describeOwnership(domain, s.Content),
		PotentialBiases: describeBiases(domain, s.Content),
	}
}

func componentScore(d model.SourceTrustReport, name string) int {
	for _, c := range d.Components {
		if c.Name == name {
			return c.Score
		}
	}
	return 0
}

func trustLabel(overall int) string {
	switch {
	case overall >= 85:
		return "Very High"
	case overall >= 70:
		return "High"
	case overall >= 55:
		return "Moderate"
	case overall >= 40:
		return "Low"
	default:
		return "Very Low"
	}
}

func topSources(details []model.SourceTrustReport, n int) []model.TopSource {
	sorted := make([]model.SourceTrustReport, len(details))
	copy(sorted, details)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Overall > sorted[j].Overall })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]model.TopSource, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, model.TopSource{Domain: d.Domain, URL: d.URL, Overall: d.Overall})
	}
	return out
}

// explain builds the structured natural-language summary: trust band,
// source counts by quality band, top sources, and the strongest and
// weakest average components.
func explain(overall int, details []model.SourceTrustReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overall trust level: %s (%d/100) across %d source(s). ",
		trustLabel(overall), overall, len(details))

	var high, moderate, low int
	for _, d := range details {
		switch {
		case d.Overall >= 70:
			high++
		case d.Overall >= 40:
			moderate++
		default:
			low++
		}
	}
	fmt.Fprintf(&b, "%d high-quality, %d moderate, %d low-quality. ", high, moderate, low)

	top := topSources(details, 3)
	if len(top) > 0 {
		names := make([]string, 0, len(top))
		for _, t := range top {
			names = append(names, fmt.Sprintf("%s (%d)", t.Domain, t.Overall))
		}
		fmt.Fprintf(&b, "Strongest sources: %s. ", strings.Join(names, ", "))
	}

	// Average each component across sources to name the best and worst factors.
	sums := map[string]int{}
	for _, d := range details {
		for _, c := range d.Components {
			sums[c.Name] += c.Score
		}
	}
	best, worst := "", ""
	bestAvg, worstAvg := -1, 101
	for _, name := range []string{"Authority", "ContentQuality", "OwnershipTransparency", "Citations", "BiasAssessment"} {
		avg := sums[name] / len(details)
		if avg > bestAvg {
			bestAvg, best = avg, name
		}
		if avg < worstAvg {
			worstAvg, worst = avg, name
		}
	}
	fmt.Fprintf(&b, "Strongest factor: %s (avg %d); weakest: %s (avg %d).",
		best, bestAvg, worst, worstAvg)
	return b.String()
}
