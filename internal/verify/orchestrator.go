// Package verify drives the claim-verification pipeline: cache
// short-circuit, claim extraction, per-claim evidence gathering and
// analysis, content rewriting, and result persistence.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"verifact/internal/claims"
	"verifact/internal/fingerprint"
	"verifact/internal/model"
	"verifact/internal/scrape"
)

// Cache is the verification-cache collaborator, keyed by content
// fingerprint. A nil Cache disables the short-circuit and persistence.
type Cache interface {
	Exists(ctx context.Context, fingerprint string) (bool, error)
	Get(ctx context.Context, fingerprint string) (*model.CacheRecord, error)
	Put(ctx context.Context, fingerprint string, rec model.CacheRecord) (string, error)
}

// BlobStore holds full run payloads referenced from cache records.
type BlobStore interface {
	Put(v any) (string, error)
	Get(id string, v any) error
}

// ClaimExtractor is the model-backed claim extraction stage.
type ClaimExtractor interface {
	Extract(ctx context.Context, text string, now time.Time) ([]model.Claim, error)
}

// ClaimAnalyzer produces a verdict for one claim against evidence text.
type ClaimAnalyzer interface {
	Analyze(ctx context.Context, claimText, evidence string, now time.Time) *model.Verdict
}

// ContentRewriter applies a verified fact to the running text.
type ContentRewriter interface {
	Rewrite(ctx context.Context, original, claim, fact, source string, now time.Time) string
}

// EvidenceGatherer collects evidence documents for a claim's queries.
type EvidenceGatherer interface {
	Gather(ctx context.Context, queries []string, claim string) scrape.Result
}

// AvailabilityProbe answers whether the model service is reachable. The
// probe result decides primary vs fallback path for a whole run, never
// per claim.
type AvailabilityProbe interface {
	Available(ctx context.Context) bool
}

// Orchestrator sequences the pipeline for one run. Claims execute
// strictly sequentially; results order matches claim order.
type Orchestrator struct {
	cache     Cache
	blobs     BlobStore
	extractor ClaimExtractor
	scraper   EvidenceGatherer
	analyzer  ClaimAnalyzer
	rewriter  ContentRewriter
	probe     AvailabilityProbe
	verifier  string
	now       func() time.Time
	log       *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCache attaches the cache and blob-store collaborators.
func WithCache(c Cache, b BlobStore) Option {
	return func(o *Orchestrator) { o.cache, o.blobs = c, b }
}

// WithClock injects the reference-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithVerifier sets the verifier label recorded in cache records.
func WithVerifier(name string) Option {
	return func(o *Orchestrator) { o.verifier = name }
}

// New builds an Orchestrator.
func New(extractor ClaimExtractor, scraper EvidenceGatherer, analyzer ClaimAnalyzer,
	rewriter ContentRewriter, probe AvailabilityProbe, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		extractor: extractor,
		scraper:   scraper,
		analyzer:  analyzer,
		rewriter:  rewriter,
		probe:     probe,
		verifier:  "verifact",
		now:       time.Now,
		log:       slog.Default().With("component", "orchestrator"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Verify runs the full pipeline for content and returns the terminal
// run. It never returns a run still in the analyzing state: any
// unexpected failure flips it to error with partial progress retained.
func (o *Orchestrator) Verify(ctx context.Context, content string) *model.VerificationRun {
	now := o.now()
	run := &model.VerificationRun{
		ID:              uuid.NewString(),
		OriginalContent: content,
		VerifiedContent: content,
		Status:          model.RunAnalyzing,
		Claims:          []model.Claim{},
		Results:         []model.ClaimResult{},
		Logs:            []model.LogEntry{},
		StartedAt:       now,
	}
	defer func() {
		if r := recover(); r != nil {
			run.Status = model.RunError
			run.Error = fmt.Sprintf("unexpected failure: %v", r)
			o.appendLog(run, "error", run.Error)
			o.log.Error("verification run failed", "run", run.ID, "panic", r)
		}
	}()

	o.appendLog(run, "info", "Verification started")
	fp := fingerprint.Of(content)

	if o.restoreFromCache(ctx, run, fp) {
		return run
	}
	o.setProgress(run, 5)

	modelUp := o.probe != nil && o.probe.Available(ctx)
	if !modelUp {
		o.appendLog(run, "warning", "Model service unavailable, using fallback paths")
	}

	run.Claims = o.extractClaims(ctx, run, content, now, modelUp)
	o.setProgress(run, 50)
	if len(run.Claims) == 0 {
		o.appendLog(run, "info", "No verifiable claims found")
		o.complete(run)
		return run
	}
	o.appendLog(run, "info", fmt.Sprintf("Extracted %d claim(s)", len(run.Claims)))

	for i, claim := range run.Claims {
		o.verifyClaim(ctx, run, claim, now, modelUp)
		o.setProgress(run, 50+(50*(i+1))/len(run.Claims))
	}

	if len(run.Results) > 0 {
		sum := 0
		for _, r := range run.Results {
			sum += r.TrustScore
		}
		run.TrustScore = sum / len(run.Results)
		o.persist(ctx, run, fp)
	}
	o.complete(run)
	return run
}

// restoreFromCache implements the short-circuit: a stored record whose
// blob payload is loadable completes the run immediately. Any cache
// failure is treated as a miss.
func (o *Orchestrator) restoreFromCache(ctx context.Context, run *model.VerificationRun, fp string) bool {
	if o.cache == nil {
		return false
	}
	exists, err := o.cache.Exists(ctx, fp)
	if err != nil {
		o.appendLog(run, "warning", "Cache check failed, proceeding with full verification")
		return false
	}
	if !exists {
		return false
	}
	rec, err := o.cache.Get(ctx, fp)
	if err != nil || rec == nil {
		o.appendLog(run, "warning", "Cache record unreadable, proceeding with full verification")
		return false
	}
	var cached model.CachedRun
	if rec.BlobID == "" || o.blobs == nil || o.blobs.Get(rec.BlobID, &cached) != nil {
		o.appendLog(run, "warning", "Cached payload missing, proceeding with full verification")
		return false
	}
	run.Claims = cached.Claims
	run.Results = cached.Results
	run.TrustScore = cached.TrustScore
	if cached.VerifiedContent != "" {
		run.VerifiedContent = cached.VerifiedContent
	}
	run.CacheVerified = true
	o.appendLog(run, "info", fmt.Sprintf("Verified previously by %s, restored from cache", rec.Verifier))
	o.complete(run)
	return true
}

// extractClaims tries the model extractor first, then the deterministic
// pattern-based fallback. Zero claims after both is not an error.
func (o *Orchestrator) extractClaims(ctx context.Context, run *model.VerificationRun,
	content string, now time.Time, modelUp bool) []model.Claim {
	if modelUp {
		extracted, err := o.extractor.Extract(ctx, content, now)
		if err != nil {
			o.appendLog(run, "warning", "Model claim extraction failed, using pattern fallback")
		} else if len(extracted) > 0 {
			return extracted
		}
	}
	return claims.FallbackExtract(content, now)
}

// verifyClaim runs scrape, analysis, and conditional rewrite for one
// claim. A result is recorded only when the rewrite actually changed the
// running text.
func (o *Orchestrator) verifyClaim(ctx context.Context, run *model.VerificationRun,
	claim model.Claim, now time.Time, modelUp bool) {
	if len(claim.SearchQueries) == 0 {
		o.appendLog(run, "warning", fmt.Sprintf("Claim has no search queries, skipping: %s", claim.ClaimText))
		return
	}
	o.appendLog(run, "info", fmt.Sprintf("Verifying claim: %s", claim.ClaimText))

	res := o.scraper.Gather(ctx, claim.SearchQueries, claim.ClaimText)
	for _, f := range res.FailedURLs {
		o.appendLog(run, "warning", fmt.Sprintf("Source failed: %s (%s)", f.URL, f.Reason))
	}
	o.appendLog(run, "info", fmt.Sprintf("Gathered %d evidence document(s)", len(res.Data)))

	var verdict *model.Verdict
	if modelUp {
		verdict = o.analyzer.Analyze(ctx, claim.ClaimText, claims.RenderEvidence(res.Data), now)
	} else {
		verdict = claims.FallbackAnalyze(claim.ClaimText)
	}
	if verdict == nil {
		o.appendLog(run, "warning", "No verdict could be produced for this claim")
		return
	}
	o.appendLog(run, "info", fmt.Sprintf("Verdict: %s (%s)", verdict.Status, verdict.VerifiedFact))
	if !verdict.Actionable() {
		return
	}

	var updated string
	if modelUp {
		updated = o.rewriter.Rewrite(ctx, run.VerifiedContent, claim.ClaimText, verdict.VerifiedFact, verdict.Source, now)
	} else {
		updated = claims.FallbackRewrite(run.VerifiedContent, claim.ClaimText, verdict.VerifiedFact, verdict.Source)
	}
	if updated == run.VerifiedContent {
		o.appendLog(run, "info", "Rewrite produced no change, claim not recorded")
		return
	}
	run.VerifiedContent = updated

	trustScore := res.Report.Overall
	if trustScore == 0 {
		trustScore = res.TrustScore
	}
	run.Results = append(run.Results, model.ClaimResult{
		Claim:         claim.ClaimText,
		OriginalValue: claim.ClaimText,
		VerifiedValue: verdict.VerifiedFact,
		Source:        verdict.Source,
		Status:        verdict.Status,
		TrustScore:    trustScore,
	})
	o.appendLog(run, "info", "Claim corrected and recorded")
}

// persist stores the finished run in the blob store and records it in
// the cache. Failures here are logged and swallowed.
func (o *Orchestrator) persist(ctx context.Context, run *model.VerificationRun, fp string) {
	if o.cache == nil || o.blobs == nil {
		return
	}
	payload := model.CachedRun{
		TrustScore:      run.TrustScore,
		Claims:          run.Claims,
		Results:         run.Results,
		VerifiedContent: run.VerifiedContent,
	}
	blobID, err := o.blobs.Put(payload)
	if err != nil {
		o.appendLog(run, "warning", fmt.Sprintf("Could not store run payload: %v", err))
		return
	}
	rec := model.CacheRecord{
		ContentHash: fp,
		ResultsHash: fingerprint.Of(run.VerifiedContent),
		Timestamp:   o.now().UTC(),
		TrustScore:  run.TrustScore,
		ClaimCount:  len(run.Claims),
		Verifier:    o.verifier,
		BlobID:      blobID,
	}
	if txID, err := o.cache.Put(ctx, fp, rec); err != nil {
		o.appendLog(run, "warning", fmt.Sprintf("Could not record verification: %v", err))
	} else {
		o.appendLog(run, "info", fmt.Sprintf("Verification recorded (tx %s)", txID))
	}
}

func (o *Orchestrator) complete(run *model.VerificationRun) {
	run.Status = model.RunCompleted
	o.setProgress(run, 100)
	o.appendLog(run, "info", "Verification completed")
}

// setProgress keeps progress monotonically non-decreasing.
func (o *Orchestrator) setProgress(run *model.VerificationRun, p int) {
	if p > run.Progress {
		run.Progress = p
	}
}

func (o *Orchestrator) appendLog(run *model.VerificationRun, typ, msg string) {
	run.Logs = append(run.Logs, model.LogEntry{Type: typ, Message: msg, Timestamp: o.now()})
	o.log.Debug(msg, "run", run.ID, "type", typ)
}
