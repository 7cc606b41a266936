// Package scrape gathers evidence documents for a claim by composing the
// searcher, fetcher, extractor, and source ranker.
package scrape

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"verifact/internal/extract"
	"verifact/internal/model"
	"verifact/internal/rank"
	"verifact/internal/trust"
)

// Status values for a scrape result.
const (
	StatusSuccess   = "success"
	StatusNoResults = "no_results"
)

// Searcher produces candidate URLs for a query.
type Searcher interface {
	Search(query string) []string
}

// Fetcher retrieves a document body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor normalizes a raw document.
type Extractor interface {
	Extract(raw, sourceURL, claim string) extract.Result
}

// Config bounds a scrape run.
type Config struct {
	MaxResults  int
	Concurrency int
}

// FillDefaults applies default limits.
func (c *Config) FillDefaults() {
	if c.MaxResults <= 0 {
		c.MaxResults = 5
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
}

// FailedURL records one isolated per-URL failure.
type FailedURL struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Result is the evidence set for one claim.
type Result struct {
	Data       []model.EvidenceDocument
	Status     string
	TrustScore int // integer mean of authority scores, 0 when empty
	Report     model.TrustScoreReport
	FailedURLs []FailedURL
}

// Scraper runs searches and fetches candidates until enough evidence is
// collected. One URL's failure never aborts the query or the run.
type Scraper struct {
	searcher  Searcher
	fetcher   Fetcher
	extractor Extractor
	cfg       Config
	log       *slog.Logger
}

// New builds a Scraper.
func New(searcher Searcher, fetcher Fetcher, extractor Extractor, cfg Config) *Scraper {
	cfg.FillDefaults()
	return &Scraper{
		searcher:  searcher,
		fetcher:   fetcher,
		extractor: extractor,
		cfg:       cfg,
		log:       slog.Default().With("component", "scraper"),
	}
}

type fetchOutcome struct {
	index int
	url   string
	doc   *model.EvidenceDocument
	fail  *FailedURL
}

// Gather iterates queries in order, fetching candidate URLs in bounded
// parallel, stopping early once MaxResults documents are collected.
// Documents are deduplicated by URL and returned sorted by descending
// authority score.
func (s *Scraper) Gather(ctx context.Context, queries []string, claim string) Result {
	seen := map[string]struct{}{}
	var docs []model.EvidenceDocument
	var failed []FailedURL

	for _, query := range queries {
		if len(docs) >= s.cfg.MaxResults {
			break
		}
		candidates := s.searcher.Search(query)
		if len(candidates) == 0 {
			s.log.Info("query yielded no candidates, skipping", "query", query)
			continue
		}

		fresh := candidates[:0:0]
		for _, u := range candidates {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			fresh = append(fresh, u)
		}
		if len(fresh) == 0 {
			continue
		}

		for _, out := range s.fetchAll(ctx, fresh, claim, s.cfg.MaxResults-len(docs)) {
			if out.fail != nil {
				failed = append(failed, *out.fail)
				continue
			}
			if len(docs) < s.cfg.MaxResults {
				docs = append(docs, *out.doc)
			}
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].AuthorityScore > docs[j].AuthorityScore
	})

	res := Result{Data: docs, Status: StatusSuccess, FailedURLs: failed}
	if len(docs) == 0 {
		res.Status = StatusNoResults
		return res
	}

	sum := 0
	sources := make([]trust.Source, 0, len(docs))
	for _, d := range docs {
		sum += d.AuthorityScore
		sources = append(sources, trust.Source{URL: d.URL, Title: d.Title, Content: d.Content})
	}
	res.TrustScore = sum / len(docs)
	res.Report = trust.Evaluate(sources)
	return res
}

// fetchAll works through the candidate list in waves until want
// documents are collected or the candidates run out, so earlier
// failures never cost later candidates their turn. Outcomes preserve
// candidate order; each URL's failure is isolated into a FailedURL.
func (s *Scraper) fetchAll(ctx context.Context, urls []string, claim string, want int) []fetchOutcome {
	if want <= 0 {
		return nil
	}

	var outcomes []fetchOutcome
	collected := 0
	for len(urls) > 0 && collected < want {
		wave := urls
		if len(wave) > want-collected {
			wave = wave[:want-collected]
		}
		urls = urls[len(wave):]

		batch := s.fetchWave(ctx, wave, claim)
		for _, out := range batch {
			if out.doc != nil {
				collected++
			}
		}
		outcomes = append(outcomes, batch...)
	}
	return outcomes
}

// fetchWave fetches one batch of candidates in bounded parallel.
func (s *Scraper) fetchWave(ctx context.Context, urls []string, claim string) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(urls))
	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = s.fetchOne(ctx, i, u, claim)
		}(i, u)
	}
	wg.Wait()
	return outcomes
}

func (s *Scraper) fetchOne(ctx context.Context, index int, url, claim string) fetchOutcome {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.Debug("fetch failed", "url", url, "err", err)
		return fetchOutcome{index: index, url: url, fail: &FailedURL{URL: url, Reason: err.Error()}}
	}
	ex := s.extractor.Extract(body, url, claim)
	if ex.Content == "" {
		return fetchOutcome{index: index, url: url, fail: &FailedURL{URL: url, Reason: "no extractable content"}}
	}
	domain := rank.Domain(url)
	return fetchOutcome{index: index, url: url, doc: &model.EvidenceDocument{
		URL:            url,
		Title:          ex.Title,
		Content:        ex.Content,
		Domain:         domain,
		SiteName:       ex.SiteName,
		AuthorityScore: rank.Score(domain),
	}}
}
