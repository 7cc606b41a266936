package claims

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"verifact/internal/ai"
	"verifact/internal/model"
	"verifact/internal/textutil"
)

const (
	defaultAnalysisTimeout = 30 * time.Second
	maxEvidenceChars       = 24000
)

// Analyzer produces a verdict for one claim from an evidence bundle via
// the model service.
type Analyzer struct {
	model   ai.Client
	timeout time.Duration
	log     *slog.Logger
}

// NewAnalyzer builds an Analyzer with the default 30s analysis timeout.
func NewAnalyzer(m ai.Client) *Analyzer {
	return NewAnalyzerWithTimeout(m, defaultAnalysisTimeout)
}

// NewAnalyzerWithTimeout builds an Analyzer with a custom hard timeout.
func NewAnalyzerWithTimeout(m ai.Client, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = defaultAnalysisTimeout
	}
	return &Analyzer{model: m, timeout: timeout, log: slog.Default().With("component", "claim-analyzer")}
}

type verdictEnvelope struct {
	VerifiedFact *string `json:"verifiedFact"`
	Source       *string `json:"source"`
	Status       *string `json:"status"`
	Reasoning    string  `json:"reasoning"`
}

// RenderEvidence flattens documents into the analyzer's evidence text.
func RenderEvidence(docs []model.EvidenceDocument) string {
	var b strings.Builder
	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&b, "Source: %s\nTitle: %s\nContent:\n%s", d.URL, d.Title, d.Content)
	}
	return b.String()
}

// Analyze returns a Verdict, or nil when the model output is unusable.
// Empty evidence short-circuits to Uncertain without a model call. A
// timed-out model call yields a deterministic Uncertain verdict so the
// run keeps making progress.
func (a *Analyzer) Analyze(ctx context.Context, claimText, evidence string, now time.Time) *model.Verdict {
	if strings.TrimSpace(evidence) == "" {
		return &model.Verdict{
			VerifiedFact: model.NotFound,
			Source:       "",
			Status:       model.StatusUncertain,
			Reasoning:    "No evidence was found for this claim",
		}
	}
	if len(evidence) > maxEvidenceChars {
		evidence = textutil.Truncate(evidence, maxEvidenceChars)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.model.Generate(ctx, analysisPrompt(claimText, evidence, now), 0.1)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			a.log.Warn("analysis timed out", "claim", claimText)
			return &model.Verdict{
				VerifiedFact: model.NotFound,
				Source:       "",
				Status:       model.StatusUncertain,
				Reasoning:    "Analysis timed out before the model answered",
			}
		}
		a.log.Warn("analysis failed", "err", err)
		return nil
	}

	var env verdictEnvelope
	if err := decodeLoose(out, &env); err != nil {
		a.log.Warn("model returned no parseable verdict", "err", err)
		return nil
	}
	if env.VerifiedFact == nil || env.Source == nil || env.Status == nil {
		a.log.Warn("verdict missing required fields")
		return nil
	}
	status := model.VerdictStatus(strings.TrimSpace(*env.Status))
	if !model.ValidStatus(status) {
		a.log.Warn("verdict has unknown status", "status", *env.Status)
		return nil
	}
	return &model.Verdict{
		VerifiedFact: strings.TrimSpace(*env.VerifiedFact),
		Source:       strings.TrimSpace(*env.Source),
		Status:       status,
		Reasoning:    strings.TrimSpace(env.Reasoning),
	}
}

func analysisPrompt(claimText, evidence string, now time.Time) string {
	return fmt.Sprintf(`You are a fact-checking expert. Today's date is %s.

Claim:
%s

Evidence:
%s

Compare the claim against the evidence. Respond with ONLY a JSON object:
{"verifiedFact":"the corrected or confirmed fact, or \"Not Found\"","source":"URL or name of the best source","status":"Confirms|Refutes|Outdated|Unrelated|Uncertain","reasoning":"one or two sentences"}

Status meanings:
- Confirms: the evidence supports the claim as stated
- Refutes: the evidence contradicts the claim; verifiedFact holds the correction
- Outdated: the claim was once true but the evidence shows newer information
- Unrelated: the evidence does not bear on the claim
- Uncertain: the evidence is insufficient or conflicting`,
		now.Format("2006-01-02"), claimText, evidence)
}
