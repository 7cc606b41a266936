package verify

import (
	"context"
	"errors"
	"testing"

	"verifact/internal/extract"
)

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return s.body, s.err
}

type stubExtractor struct {
	res extract.Result
}

func (s *stubExtractor) Extract(raw, sourceURL, claim string) extract.Result {
	return s.res
}

func TestAnalyzeSourceInvalidURL(t *testing.T) {
	insp := NewSourceInspector(&stubFetcher{}, &stubExtractor{})
	if _, err := insp.AnalyzeSource(context.Background(), "   "); err == nil {
		t.Error("expected error for blank url")
	}
}

func TestAnalyzeSourceFetchFailureScoresDomainOnly(t *testing.T) {
	insp := NewSourceInspector(&stubFetcher{err: errors.New("unreachable")}, &stubExtractor{})
	report, err := insp.AnalyzeSource(context.Background(), "https://en.wikipedia.org/wiki/Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Domain != "en.wikipedia.org" {
		t.Errorf("domain = %q", report.Domain)
	}
	if report.Overall <= 0 || report.Overall > 100 {
		t.Errorf("overall = %d, want (0,100]", report.Overall)
	}
	if len(report.Components) != 5 {
		t.Errorf("components = %d, want 5", len(report.Components))
	}
}

func TestAnalyzeSourceUsesExtractedContent(t *testing.T) {
	ex := &stubExtractor{res: extract.Result{
		Title:   "Some Article",
		Content: "A well cited article [1] with an attribution, according to researchers (Smith, 2021).",
	}}
	insp := NewSourceInspector(&stubFetcher{body: "<html></html>"}, ex)
	report, err := insp.AnalyzeSource(context.Background(), "https://example.com/article")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Title != "Some Article" {
		t.Errorf("title = %q", report.Title)
	}
}
