// Package search constructs candidate evidence URLs for a query.
//
// This is an explicit stand-in for a real search engine: candidate URLs
// are built deterministically against a fixed list of reference sites,
// with no network access. The scraper discovers which candidates
// actually resolve.
package search

import (
	"fmt"
	"net/url"
	"strings"

	"verifact/internal/textutil"
)

type referenceSite struct {
	host        string
	articlePath bool // build an article-path URL instead of search?q=
}

// Reference sites tried for every query, in order.
var referenceSites = []referenceSite{
	{host: "en.wikipedia.org", articlePath: true},
	{host: "www.britannica.com"},
	{host: "www.reuters.com"},
	{host: "apnews.com"},
	{host: "www.bbc.com"},
	{host: "www.snopes.com"},
	{host: "www.factcheck.org"},
	{host: "www.nature.com"},
}

const minKeywordLength = 3

// Searcher builds candidate URL lists. Stateless and deterministic.
type Searcher struct{}

// New returns a Searcher.
func New() *Searcher { return &Searcher{} }

// Search returns one candidate URL per reference site for the query, or
// an empty list when the query has no usable keywords.
func (s *Searcher) Search(query string) []string {
	keywords := textutil.Keywords(query, minKeywordLength)
	if len(keywords) == 0 {
		return nil
	}

	urls := make([]string, 0, len(referenceSites))
	for _, site := range referenceSites {
		if site.articlePath {
			urls = append(urls, articleURL(site.host, keywords))
		} else {
			urls = append(urls, searchURL(site.host, keywords))
		}
	}
	return urls
}

// articleURL builds an encyclopedia-style path of capitalized,
// underscore-joined keywords, e.g. /wiki/Eiffel_Tower.
func articleURL(host string, keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		parts = append(parts, capitalize(kw))
	}
	return fmt.Sprintf("https://%s/wiki/%s", host, strings.Join(parts, "_"))
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

func searchURL(host string, keywords []string) string {
	q := url.QueryEscape(strings.Join(keywords, " "))
	return fmt.Sprintf("https://%s/search?q=%s", host, q)
}
