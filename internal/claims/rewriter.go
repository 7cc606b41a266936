package claims

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"verifact/internal/ai"
)

// Rewriter replaces a verified claim segment inside the original text.
// It always returns some text; the caller detects whether a change
// happened by comparing against the input.
type Rewriter struct {
	model ai.Client
	log   *slog.Logger
}

// NewRewriter builds a Rewriter.
func NewRewriter(m ai.Client) *Rewriter {
	return &Rewriter{model: m, log: slog.Default().With("component", "rewriter")}
}

// Rewrite asks the model to replace only the claim segment with the
// verified fact. When the model is unavailable, times out, or echoes the
// input unchanged, it falls back to literal substring replacement.
func (r *Rewriter) Rewrite(ctx context.Context, original, claim, fact, source string, now time.Time) string {
	out, err := r.model.Generate(ctx, rewritePrompt(original, claim, fact, source, now), 0.1)
	if err == nil {
		out = strings.TrimSpace(out)
		if out != "" && out != strings.TrimSpace(original) {
			return out
		}
		r.log.Debug("model rewrite was a no-op, using literal replacement")
	} else {
		r.log.Debug("model rewrite unavailable, using literal replacement", "err", err)
	}
	return FallbackRewrite(original, claim, fact, source)
}

// FallbackRewrite replaces the claim text literally with the verified
// fact plus a source label. No match means no change.
func FallbackRewrite(original, claim, fact, source string) string {
	if claim == "" || !strings.Contains(original, claim) {
		return original
	}
	replacement := fact
	if source != "" {
		replacement = fmt.Sprintf("%s (Source: %s)", fact, source)
	}
	return strings.Replace(original, claim, replacement, 1)
}

func rewritePrompt(original, claim, fact, source string, now time.Time) string {
	return fmt.Sprintf(`You are a careful copy editor. Today's date is %s.

In the text below, locate this claim:
%s

Replace ONLY that segment with the verified fact, keeping every other
word, punctuation mark, and line break exactly as it is:
%s (Source: %s)

Return the full updated text and nothing else.

Text:
%s`, now.Format("2006-01-02"), claim, fact, source, original)
}
