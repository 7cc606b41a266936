package model

import "time"

// Claim is a candidate factual statement pulled from submitted text,
// together with the search queries used to find evidence for it.
// The first query is treated as the primary one.
type Claim struct {
	ClaimText     string   `json:"claimText"`
	SearchQueries []string `json:"searchQueries"`
}

// EvidenceDocument is a fetched and extracted web page considered as
// potential support or refutation for a claim. It lives for one
// claim-verification step and is never persisted.
type EvidenceDocument struct {
	URL            string `json:"url"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Domain         string `json:"domain"`
	SiteName       string `json:"siteName"`
	AuthorityScore int    `json:"authorityScore"`
}

// VerdictStatus is the outcome class of analyzing one claim against evidence.
type VerdictStatus string

const (
	StatusConfirms  VerdictStatus = "Confirms"
	StatusRefutes   VerdictStatus = "Refutes"
	StatusOutdated  VerdictStatus = "Outdated"
	StatusUnrelated VerdictStatus = "Unrelated"
	StatusUncertain VerdictStatus = "Uncertain"
)

// ValidStatus reports whether s is one of the five known verdict statuses.
func ValidStatus(s VerdictStatus) bool {
	switch s {
	case StatusConfirms, StatusRefutes, StatusOutdated, StatusUnrelated, StatusUncertain:
		return true
	}
	return false
}

// NotFound is the verifiedFact value meaning "no actionable verdict".
const NotFound = "Not Found"

// Verdict is the claim-level outcome of analysis against evidence.
type Verdict struct {
	VerifiedFact string        `json:"verifiedFact"`
	Source       string        `json:"source"`
	Status       VerdictStatus `json:"status"`
	Reasoning    string        `json:"reasoning,omitempty"`
}

// Actionable reports whether the verdict should drive a rewrite: only
// confirmed or refuted claims with a real verified fact are acted on.
func (v Verdict) Actionable() bool {
	if v.VerifiedFact == "" || v.VerifiedFact == NotFound {
		return false
	}
	return v.Status == StatusConfirms || v.Status == StatusRefutes
}

// RunStatus is the lifecycle state of a verification run.
type RunStatus string

const (
	RunAnalyzing RunStatus = "analyzing"
	RunCompleted RunStatus = "completed"
	RunError     RunStatus = "error"
)

// LogEntry is one observable pipeline event. The ordered log is part of
// the run's output contract, not just diagnostics.
type LogEntry struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ClaimResult records one actionably-verified claim: the original text
// segment, the verified replacement, and where it came from.
type ClaimResult struct {
	Claim         string        `json:"claim"`
	OriginalValue string        `json:"originalValue"`
	VerifiedValue string        `json:"verifiedValue"`
	Source        string        `json:"source"`
	Status        VerdictStatus `json:"status"`
	TrustScore    int           `json:"trustScore"`
}

// VerificationRun is the full state of one verification request. It is
// created when the request arrives and mutated in place as stages
// complete; terminal on status completed or error.
type VerificationRun struct {
	ID              string        `json:"id"`
	OriginalContent string        `json:"originalContent"`
	VerifiedContent string        `json:"verifiedContent"`
	Status          RunStatus     `json:"status"`
	Progress        int           `json:"progress"`
	Claims          []Claim       `json:"claims"`
	Results         []ClaimResult `json:"results"`
	TrustScore      int           `json:"trustScore"`
	CacheVerified   bool          `json:"cacheVerified"`
	Error           string        `json:"error,omitempty"`
	Logs            []LogEntry    `json:"logs"`
	StartedAt       time.Time     `json:"startedAt"`
}

// CacheRecord is what the verification cache stores per content
// fingerprint. The full run payload lives in the blob store under BlobID.
type CacheRecord struct {
	ContentHash string    `json:"contentHash"`
	ResultsHash string    `json:"resultsHash"`
	Timestamp   time.Time `json:"timestamp"`
	TrustScore  int       `json:"trustScore"`
	ClaimCount  int       `json:"claimCount"`
	Verifier    string    `json:"verifier"`
	BlobID      string    `json:"blobId"`
}

// CachedRun is the blob-store payload referenced by a cache record.
type CachedRun struct {
	TrustScore      int           `json:"trustScore"`
	Claims          []Claim       `json:"claims"`
	Results         []ClaimResult `json:"results"`
	VerifiedContent string        `json:"verifiedContent"`
}
