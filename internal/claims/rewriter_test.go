package claims

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFallbackRewriteReplacesClaim(t *testing.T) {
	got := FallbackRewrite(
		"The tower was completed in 1890. It stands in Paris.",
		"The tower was completed in 1890",
		"The tower was completed in March 1889",
		"en.wikipedia.org",
	)
	if !strings.Contains(got, "March 1889 (Source: en.wikipedia.org)") {
		t.Errorf("rewrite = %q", got)
	}
	if strings.Contains(got, "1890") {
		t.Errorf("original claim still present: %q", got)
	}
	if !strings.Contains(got, "It stands in Paris.") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestFallbackRewriteNoMatchIsNoOp(t *testing.T) {
	original := "Completely unrelated text."
	if got := FallbackRewrite(original, "missing claim", "fact", "src"); got != original {
		t.Errorf("no-match rewrite changed text: %q", got)
	}
}

func TestFallbackRewriteEmptyClaim(t *testing.T) {
	original := "Some text."
	if got := FallbackRewrite(original, "", "fact", "src"); got != original {
		t.Errorf("empty claim changed text: %q", got)
	}
}

func TestFallbackRewriteNoSourceLabel(t *testing.T) {
	got := FallbackRewrite("a claim here", "claim", "fact", "")
	if got != "a fact here" {
		t.Errorf("rewrite = %q", got)
	}
}

func TestRewriteUsesModelOutput(t *testing.T) {
	m := &fakeModel{out: "The corrected text entirely."}
	got := NewRewriter(m).Rewrite(context.Background(), "original text", "original", "corrected", "src", refTime)
	if got != "The corrected text entirely." {
		t.Errorf("rewrite = %q", got)
	}
}

func TestRewriteModelEchoFallsBack(t *testing.T) {
	original := "The tower was completed in 1890."
	m := &fakeModel{out: original}
	got := NewRewriter(m).Rewrite(context.Background(), original, "completed in 1890", "completed in 1889", "wiki", refTime)
	if got == original {
		t.Fatal("echoed output should trigger fallback replacement")
	}
	if !strings.Contains(got, "completed in 1889") {
		t.Errorf("rewrite = %q", got)
	}
}

func TestRewriteModelUnavailableFallsBack(t *testing.T) {
	m := &fakeModel{err: errors.New("connection refused")}
	original := "The value is 10 units."
	got := NewRewriter(m).Rewrite(context.Background(), original, "10 units", "12 units", "src", refTime)
	if !strings.Contains(got, "12 units (Source: src)") {
		t.Errorf("rewrite = %q", got)
	}
}
