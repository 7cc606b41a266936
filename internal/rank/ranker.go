// Package rank assigns authority scores to source domains from a curated
// table with TLD fallback heuristics.
package rank

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var sourcesYAML []byte

type tableEntry struct {
	Domain   string `yaml:"domain"`
	Score    int    `yaml:"score"`
	Category string `yaml:"category"`
}

// OwnershipEntry describes curated ownership and bias knowledge for a
// well-known domain. Consumed by the trust scorer.
type OwnershipEntry struct {
	Domain string `yaml:"domain"`
	Owner  string `yaml:"owner"`
	Biases string `yaml:"biases"`
}

type sourceTable struct {
	HighAuthority []tableEntry     `yaml:"high_authority"`
	LowAuthority  []tableEntry     `yaml:"low_authority"`
	Ownership     []OwnershipEntry `yaml:"ownership"`
}

var curated sourceTable

func init() {
	if err := yaml.Unmarshal(sourcesYAML, &curated); err != nil {
		panic(fmt.Sprintf("rank: bad embedded source table: %v", err))
	}
}

// tldScores is consulted when no curated entry matches.
var tldScores = []struct {
	suffix string
	score  int
}{
	{".gov", 85},
	{".edu", 80},
	{".mil", 80},
	{".int", 75},
	{".org", 65},
	{".com", 60},
	{".net", 60},
	{".info", 50},
	{".biz", 45},
	{".io", 55},
}

const defaultScore = 50

// Score returns the 0-100 authority score for a domain. Pure, total, and
// deterministic: any input, including garbage, yields a score.
func Score(domain string) int {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "www.")
	if d == "" {
		return defaultScore
	}
	// Exact curated match first, table order breaking ties.
	for _, e := range curated.HighAuthority {
		if d == e.Domain {
			return e.Score
		}
	}
	for _, e := range curated.LowAuthority {
		if d == e.Domain {
			return e.Score
		}
	}
	for _, t := range tldScores {
		if strings.HasSuffix(d, t.suffix) {
			return t.score
		}
	}
	return defaultScore
}

// ScoreURL extracts the host from a URL and scores it. Unparseable input
// falls back to scoring the raw string.
func ScoreURL(rawURL string) int {
	return Score(Domain(rawURL))
}

// Domain pulls the bare host (no scheme, port, or www prefix) out of a
// URL-ish string.
func Domain(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		// Raw string fallback: take everything up to the first slash.
		t := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
		if i := strings.IndexByte(t, '/'); i >= 0 {
			t = t[:i]
		}
		return strings.TrimPrefix(strings.ToLower(t), "www.")
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Ownership returns the curated ownership entry for a domain, if any.
func Ownership(domain string) (OwnershipEntry, bool) {
	d := strings.TrimPrefix(strings.ToLower(domain), "www.")
	for _, e := range curated.Ownership {
		if d == e.Domain {
			return e, true
		}
	}
	return OwnershipEntry{}, false
}

// HighAuthorityDomains lists the curated high-authority domains, in table order.
func HighAuthorityDomains() []string {
	out := make([]string, 0, len(curated.HighAuthority))
	for _, e := range curated.HighAuthority {
		out = append(out, e.Domain)
	}
	return out
}

// LowAuthorityDomains lists the curated low-authority domains, in table order.
func LowAuthorityDomains() []string {
	out := make([]string, 0, len(curated.LowAuthority))
	for _, e := range curated.LowAuthority {
		out = append(out, e.Domain)
	}
	return out
}
