package trust

import (
	"regexp"
	"strings"

	"verifact/internal/rank"
)

// Content-quality signals. Scores are sub-blended in scoreContentQuality.

var (
	citationPattern    = regexp.MustCompile(`\[\d+\]`)
	authorYearPattern  = regexp.MustCompile(`\([A-Z][a-z]+,?\s+\d{4}\)`)
	quotedYearPattern  = regexp.MustCompile(`"[^"]+"\s*\(\d{4}\)`)
	urlPattern         = regexp.MustCompile(`https?://[^\s<>"']+`)
	etAlPattern        = regexp.MustCompile(`\bet al\.?`)
	attributionPattern = regexp.MustCompile(`(?i)\b(according to|as reported by|cited by|sources? say|per the)\b`)
	numberDatePattern  = regexp.MustCompile(`\b\d{4}\b|\b\d+([.,]\d+)?%?\b`)
)

var errorPagePhrases = []string{
	"403 forbidden", "404 not found", "access denied", "captcha",
	"enable javascript", "are you a robot", "rate limit",
	"page not found", "service unavailable",
}

var clickbaitPhrases = []string{
	"you won't believe", "shocking", "doctors hate", "this one trick",
	"what happened next", "number 7 will", "gone wrong", "mind-blowing",
	"jaw-dropping",
}

var positiveSentiment = []string{
	"amazing", "incredible", "wonderful", "fantastic", "perfect",
	"excellent", "brilliant", "stunning",
}

var negativeSentiment = []string{
	"terrible", "horrible", "awful", "disaster", "catastrophe",
	"disgusting", "outrageous", "devastating",
}

var emotionalWords = []string{
	"outrageous", "shocking", "disgusting", "terrifying", "horrifying",
	"devastating", "unbelievable", "scandalous", "explosive", "bombshell",
	"slams", "destroys", "eviscerates", "furious", "panic",
}

var leftVocabulary = []string{
	"progressive", "social justice", "systemic", "marginalized",
	"equity", "far-right", "alt-right", "corporate greed",
}

var rightVocabulary = []string{
	"traditional values", "radical left", "woke", "mainstream media",
	"deep state", "globalist", "patriot", "far-left",
}

var authorityVocabulary = []string{
	"study", "research", "university", "professor", "expert", "analysis",
	"journal", "peer-reviewed", "institute", "laboratory",
}

func countPhrases(lower string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		n += strings.Count(lower, p)
	}
	return n
}

// scoreContentQuality blends length, structure, and quality-signal
// sub-scores, then subtracts error-page, clickbait, and sentiment
// penalties. Result is clamped to [0,100].
func scoreContentQuality(content string) int {
	text := strings.TrimSpace(content)
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	words := len(strings.Fields(text))

	// Length: 100 at >=1000 words, linear below.
	lengthScore := words / 10
	if lengthScore > 100 {
		lengthScore = 100
	}

	// Structure: paragraphs and sentences suggest real prose.
	paragraphs := strings.Count(text, "\n\n") + 1
	sentences := strings.Count(text, ". ") + strings.Count(text, "! ") + strings.Count(text, "? ")
	structureScore := paragraphs*10 + sentences*2
	if structureScore > 100 {
		structureScore = 100
	}

	// Quality signals: citations, numbers, dates.
	signals := len(citationPattern.FindAllString(text, -1))*8 +
		len(numberDatePattern.FindAllString(text, 20))*3
	if signals > 100 {
		signals = 100
	}

	score := int(0.35*float64(lengthScore) + 0.35*float64(structureScore) + 0.30*float64(signals))

	if countPhrases(lower, errorPagePhrases) > 0 {
		score -= 50
	}
	score -= countPhrases(lower, clickbaitPhrases) * 15

	pos := countPhrases(lower, positiveSentiment)
	neg := countPhrases(lower, negativeSentiment)
	imbalance := pos - neg
	if imbalance < 0 {
		imbalance = -imbalance
	}
	score -= imbalance * 5

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// scoreOwnership starts from a neutral 50 and rewards structured
// ownership disclosure plus institutional TLDs.
func scoreOwnership(domain, content string) int {
	score := 50
	lower := strings.ToLower(content)

	bonus := 0
	for _, field := range []string{"owned by", "parent company", "founded", "headquarters", "funded by"} {
		if strings.Contains(lower, field) {
			bonus += 5
		}
	}
	if _, ok := rank.Ownership(domain); ok {
		bonus += 10
	}
	if bonus > 25 {
		bonus = 25
	}
	score += bonus

	switch {
	case strings.HasSuffix(domain, ".gov"):
		score += 15
	case strings.HasSuffix(domain, ".edu"):
		score += 10
	case strings.HasSuffix(domain, ".org"):
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

// scoreCitations counts reference patterns and attribution phrases, with
// a bonus for authority-indicating vocabulary. Clamped to [10,100].
func scoreCitations(content string) int {
	if strings.TrimSpace(content) == "" {
		return 10
	}
	lower := strings.ToLower(content)
	count := len(citationPattern.FindAllString(content, -1)) +
		len(authorYearPattern.FindAllString(content, -1)) +
		len(quotedYearPattern.FindAllString(content, -1)) +
		len(urlPattern.FindAllString(content, -1)) +
		len(etAlPattern.FindAllString(lower, -1)) +
		len(attributionPattern.FindAllString(content, -1))

	score := count * 10
	if score > 80 {
		score = 80
	}

	bonus := 0
	for _, w := range authorityVocabulary {
		if strings.Contains(lower, w) {
			bonus += 4
		}
	}
	if bonus > 20 {
		bonus = 20
	}
	score += bonus

	if score < 10 {
		score = 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// scoreBias converts emotional-language and political-vocabulary density
// into penalties subtracted from 100. Floor 10.
func scoreBias(content string) int {
	text := strings.TrimSpace(content)
	if text == "" {
		return 100
	}
	lower := strings.ToLower(text)
	words := len(strings.Fields(text))
	if words == 0 {
		return 100
	}

	emotional := countPhrases(lower, emotionalWords)
	left := countPhrases(lower, leftVocabulary)
	right := countPhrases(lower, rightVocabulary)

	perK := float64(1000) / float64(words)
	emotionalPenalty := int(float64(emotional) * perK * 10)
	if emotionalPenalty > 40 {
		emotionalPenalty = 40
	}
	skew := left - right
	if skew < 0 {
		skew = -skew
	}
	politicalPenalty := int(float64(skew) * perK * 15)
	if politicalPenalty > 40 {
		politicalPenalty = 40
	}

	score := 100 - emotionalPenalty - politicalPenalty
	if score < 10 {
		score = 10
	}
	return score
}

// describeOwnership resolves ownership info: curated table first, then a
// coarse derivation from disclosure keywords in the content, else Unknown.
func describeOwnership(domain, content string) string {
	if e, ok := rank.Ownership(domain); ok {
		return e.Owner
	}
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "non-profit") || strings.Contains(lower, "nonprofit"):
		return "Appears to be non-profit operated"
	case strings.Contains(lower, "parent company") || strings.Contains(lower, "owned by"):
		return "Corporate ownership disclosed in content"
	case strings.Contains(lower, "independent"):
		return "Self-described independent outlet"
	}
	return "Unknown"
}

// describeBiases resolves bias info: curated table first, then a keyword
// comparison over the content, else Unknown.
func describeBiases(domain, content string) string {
	if e, ok := rank.Ownership(domain); ok && e.Biases != "" {
		return e.Biases
	}
	lower := strings.ToLower(content)
	left := countPhrases(lower, leftVocabulary)
	right := countPhrases(lower, rightVocabulary)
	emotional := countPhrases(lower, emotionalWords)
	switch {
	case left > right+2:
		return "Language suggests a left-leaning framing"
	case right > left+2:
		return "Language suggests a right-leaning framing"
	case emotional > 3:
		return "Heavy use of emotionally loaded language"
	}
	return "Unknown"
}
