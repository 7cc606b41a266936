package cmd

import (
	"verifact/internal/ai"
	"verifact/internal/claims"
	"verifact/internal/config"
	"verifact/internal/extract"
	"verifact/internal/fetch"
	"verifact/internal/scrape"
	"verifact/internal/search"
	"verifact/internal/verify"
)

// pipeline bundles the wired verification components shared by the
// serve, verify, and source commands.
type pipeline struct {
	model     ai.Client
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	scraper   *scrape.Scraper
	inspector *verify.SourceInspector
}

// buildPipeline wires the stateless pipeline components from config.
func buildPipeline(cfg config.Config) *pipeline {
	model := ai.NewOpenAI(ai.Config{
		APIKey:  cfg.Model.APIKey,
		Model:   cfg.Model.Model,
		BaseURL: cfg.Model.BaseURL,
		Timeout: cfg.ModelTimeout(),
	})
	fetcher := fetch.New(
		fetch.WithTimeout(cfg.ScrapeTimeout()),
		fetch.WithRateLimit(float64(cfg.Scrape.RatePerSec)),
	)
	extractor := extract.NewWithLimit(cfg.Scrape.MaxContentLength)
	scraper := scrape.New(search.New(), fetcher, extractor, scrape.Config{
		MaxResults:  cfg.Scrape.MaxResults,
		Concurrency: cfg.Scrape.Concurrency,
	})
	return &pipeline{
		model:     model,
		fetcher:   fetcher,
		extractor: extractor,
		scraper:   scraper,
		inspector: verify.NewSourceInspector(fetcher, extractor),
	}
}

// orchestrator builds the run driver on top of the pipeline. probe
// decides model availability per run; cache and blobs may be nil.
func (p *pipeline) orchestrator(cfg config.Config, probe verify.AvailabilityProbe,
	cache verify.Cache, blobs verify.BlobStore) *verify.Orchestrator {
	opts := []verify.Option{verify.WithVerifier(cfg.Verify.Verifier)}
	if cache != nil && blobs != nil {
		opts = append(opts, verify.WithCache(cache, blobs))
	}
	return verify.New(
		claims.NewExtractor(p.model),
		p.scraper,
		claims.NewAnalyzerWithTimeout(p.model, cfg.AnalysisTimeout()),
		claims.NewRewriter(p.model),
		probe,
		opts...,
	)
}
