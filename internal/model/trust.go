package model

// TrustComponent is one factor of a source's credibility score.
// Weights across the five components sum to 1.0.
type TrustComponent struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// SourceTrustReport is the per-source credibility breakdown.
type SourceTrustReport struct {
	Domain          string           `json:"domain"`
	URL             string           `json:"url"`
	Title           string           `json:"title,omitempty"`
	Overall         int              `json:"overall"`
	Components      []TrustComponent `json:"components"`
	OwnershipInfo   string           `json:"ownershipInfo"`
	PotentialBiases string           `json:"potentialBiases"`
}

// TopSource is a compact reference to a highly-ranked source.
type TopSource struct {
	Domain  string `json:"domain"`
	URL     string `json:"url"`
	Overall int    `json:"overall"`
}

// TrustScoreReport aggregates per-source reports into one credibility
// measure for a whole evidence set.
type TrustScoreReport struct {
	Overall       int                 `json:"overall"`
	SourceDetails []SourceTrustReport `json:"sourceDetails"`
	Explanation   string              `json:"explanation"`
	SourceCount   int                 `json:"sourceCount"`
	TopSources    []TopSource         `json:"topSources"`
}
