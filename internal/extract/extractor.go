// Package extract turns raw fetched documents into normalized plain-text
// tuples suitable for claim analysis.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"verifact/internal/rank"
	"verifact/internal/textutil"
)

// MaxContentLength caps extracted plain text.
const MaxContentLength = 50000

const (
	maxRelevantSentences = 10
	minSentenceLength    = 10
	minKeywordLength     = 3
)

// Result is the normalized view of one document.
type Result struct {
	Title             string
	Content           string
	SiteName          string
	RelevantSentences []string
}

// Extractor pulls title, main content, and claim-relevant sentences out
// of raw HTML. It never fails: on any internal problem it returns an
// empty result carrying just the site name.
type Extractor struct {
	strip     *bluemonday.Policy
	maxLength int
}

// New builds an Extractor with the default content cap.
func New() *Extractor {
	return &Extractor{strip: bluemonday.StrictPolicy(), maxLength: MaxContentLength}
}

// NewWithLimit builds an Extractor with a custom content cap.
func NewWithLimit(maxLength int) *Extractor {
	if maxLength <= 0 {
		maxLength = MaxContentLength
	}
	return &Extractor{strip: bluemonday.StrictPolicy(), maxLength: maxLength}
}

// Extract normalizes raw into {title, content, siteName}. When claim is
// non-empty, up to 10 sentences containing claim keywords are collected
// in document order.
func (e *Extractor) Extract(raw, sourceURL, claim string) Result {
	fallback := Result{SiteName: rank.Domain(sourceURL)}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return fallback
	}

	doc.Find("script, style, iframe, noscript, nav, header, footer, aside").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	siteName := fallback.SiteName
	if v, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		siteName = strings.TrimSpace(v)
	}

	content := e.mainContent(doc)
	if len(content) > e.maxLength {
		content = textutil.Truncate(content, e.maxLength)
	}

	res := Result{Title: title, Content: content, SiteName: siteName}
	if claim != "" && content != "" {
		res.RelevantSentences = relevantSentences(content, claim)
	}
	return res
}

// mainContent tries progressively broader regions: article, main, a
// content-id div, a main-class div, body, then the whole document.
func (e *Extractor) mainContent(doc *goquery.Document) string {
	selectors := []string{
		"article",
		"main",
		"div#content",
		"div.main",
		"body",
	}
	for _, sel := range selectors {
		region := doc.Find(sel).First()
		if region.Length() == 0 {
			continue
		}
		if text := e.regionText(region); text != "" {
			return text
		}
	}
	return e.docText(doc)
}

func (e *Extractor) regionText(s *goquery.Selection) string {
	h, err := goquery.OuterHtml(s)
	if err != nil {
		return ""
	}
	return textutil.CollapseWhitespace(e.strip.Sanitize(h))
}

func (e *Extractor) docText(doc *goquery.Document) string {
	h, err := doc.Html()
	if err != nil {
		return ""
	}
	return textutil.CollapseWhitespace(e.strip.Sanitize(h))
}

// relevantSentences collects up to 10 sentences containing any
// non-stopword claim keyword, case-insensitively, in document order.
func relevantSentences(content, claim string) []string {
	keywords := textutil.Keywords(claim, minKeywordLength)
	if len(keywords) == 0 {
		return nil
	}
	var out []string
	for _, sentence := range textutil.Sentences(content, minSentenceLength) {
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, sentence)
				break
			}
		}
		if len(out) >= maxRelevantSentences {
			break
		}
	}
	return out
}
