package claims

import (
	"context"
	"strings"
	"testing"
	"time"

	"verifact/internal/model"
)

func TestAnalyzeEmptyEvidence(t *testing.T) {
	a := NewAnalyzer(&fakeModel{out: "should not be called"})
	v := a.Analyze(context.Background(), "claim", "   ", refTime)
	if v == nil {
		t.Fatal("expected an immediate verdict")
	}
	if v.Status != model.StatusUncertain || v.VerifiedFact != model.NotFound {
		t.Errorf("verdict = %+v, want Uncertain/Not Found", v)
	}
}

func TestAnalyzeValidVerdict(t *testing.T) {
	m := &fakeModel{out: `{"verifiedFact":"The tower was completed in 1889","source":"https://en.wikipedia.org/wiki/Eiffel_Tower","status":"Refutes","reasoning":"The claim said 1890."}`}
	v := NewAnalyzer(m).Analyze(context.Background(), "completed in 1890", "Source: x\nTitle: y\nContent:\nz", refTime)
	if v == nil {
		t.Fatal("expected verdict")
	}
	if v.Status != model.StatusRefutes {
		t.Errorf("status = %s", v.Status)
	}
	if v.VerifiedFact == "" || v.Source == "" {
		t.Errorf("verdict missing fields: %+v", v)
	}
}

func TestAnalyzeMissingRequiredField(t *testing.T) {
	m := &fakeModel{out: `{"verifiedFact":"fact","status":"Confirms"}`}
	if v := NewAnalyzer(m).Analyze(context.Background(), "c", "evidence", refTime); v != nil {
		t.Errorf("expected nil for missing source, got %+v", v)
	}
}

func TestAnalyzeUnknownStatus(t *testing.T) {
	m := &fakeModel{out: `{"verifiedFact":"fact","source":"s","status":"Maybe"}`}
	if v := NewAnalyzer(m).Analyze(context.Background(), "c", "evidence", refTime); v != nil {
		t.Errorf("expected nil for unknown status, got %+v", v)
	}
}

func TestAnalyzeUnparseableOutput(t *testing.T) {
	m := &fakeModel{out: "the evidence is inconclusive"}
	if v := NewAnalyzer(m).Analyze(context.Background(), "c", "evidence", refTime); v != nil {
		t.Errorf("expected nil for unparseable output, got %+v", v)
	}
}

func TestAnalyzeTimeoutSubstitute(t *testing.T) {
	a := NewAnalyzerWithTimeout(&slowModel{delay: 200 * time.Millisecond}, 30*time.Millisecond)
	v := a.Analyze(context.Background(), "c", "evidence", refTime)
	if v == nil {
		t.Fatal("timeout must yield a substitute verdict, not nil")
	}
	if v.Status != model.StatusUncertain {
		t.Errorf("status = %s, want Uncertain", v.Status)
	}
}

type slowModel struct{ delay time.Duration }

func (s *slowModel) Available(context.Context) bool               { return true }
func (s *slowModel) ListModels(context.Context) ([]string, error) { return []string{"slow"}, nil }
func (s *slowModel) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
		return "{}", nil
	}
}

func TestRenderEvidence(t *testing.T) {
	docs := []model.EvidenceDocument{
		{URL: "https://a.example", Title: "A", Content: "alpha"},
		{URL: "https://b.example", Title: "B", Content: "beta"},
	}
	out := RenderEvidence(docs)
	for _, want := range []string{"Source: https://a.example", "Title: B", "Content:\nalpha", "---"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered evidence missing %q:\n%s", want, out)
		}
	}
}
