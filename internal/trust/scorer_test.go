package trust

import (
	"reflect"
	"strings"
	"testing"
)

func TestEmptyInput(t *testing.T) {
	rep := Evaluate(nil)
	if rep.Overall != 0 {
		t.Errorf("overall = %d, want 0", rep.Overall)
	}
	if len(rep.SourceDetails) != 0 {
		t.Errorf("expected no source details")
	}
	if rep.Explanation != "No sources available for evaluation." {
		t.Errorf("explanation = %q", rep.Explanation)
	}
}

func TestScoresWithinRange(t *testing.T) {
	sources := []Source{
		{URL: "https://www.reuters.com/a", Content: "Some short text."},
		{URL: "https://infowars.com/b", Content: strings.Repeat("SHOCKING outrageous scandal! ", 50)},
		{URL: "https://unknown.xyz/c"},
		{URL: "https://nih.gov/d", Content: "A study [1] by university researchers (Smith, 2021) found 42% improvement. According to the data, results held. " + strings.Repeat("More detail follows here. ", 40)},
	}
	rep := Evaluate(sources)
	if rep.Overall < 0 || rep.Overall > 100 {
		t.Errorf("aggregate overall = %d, out of range", rep.Overall)
	}
	if rep.SourceCount != len(sources) {
		t.Errorf("sourceCount = %d, want %d", rep.SourceCount, len(sources))
	}
	for _, d := range rep.SourceDetails {
		if d.Overall < 0 || d.Overall > 100 {
			t.Errorf("source %s overall = %d, out of range", d.Domain, d.Overall)
		}
		var weightSum float64
		for _, c := range d.Components {
			if c.Score < 0 || c.Score > 100 {
				t.Errorf("source %s component %s = %d, out of range", d.Domain, c.Name, c.Score)
			}
			weightSum += c.Weight
		}
		if weightSum < 0.999 || weightSum > 1.001 {
			t.Errorf("source %s component weights sum to %f, want 1.0", d.Domain, weightSum)
		}
	}
}

func TestWikipediaCitedSource(t *testing.T) {
	content := strings.Repeat("The topic has a documented history. ", 200) +
		"Key findings [1] were confirmed [2] in later research [3], see also [4] and [5]."
	rep := Evaluate([]Source{{URL: "https://en.wikipedia.org/wiki/X", Content: content}})
	if len(rep.SourceDetails) != 1 {
		t.Fatalf("expected one source detail")
	}
	d := rep.SourceDetails[0]

	authority := 0
	citations := 0
	for _, c := range d.Components {
		switch c.Name {
		case "Authority":
			authority = c.Score
		case "Citations":
			citations = c.Score
		}
	}
	if authority < 75 {
		t.Errorf("wikipedia authority = %d, want >= 75", authority)
	}
	if citations <= 10 {
		t.Errorf("citations component = %d, want > 10", citations)
	}
}

func TestIdempotent(t *testing.T) {
	sources := []Source{
		{URL: "https://www.bbc.com/news/1", Title: "A", Content: "Officials said on Monday that 3 of 7 measures passed."},
		{URL: "https://medium.com/@x/post", Title: "B", Content: "I think this is amazing and incredible and wonderful."},
	}
	first := Evaluate(sources)
	second := Evaluate(sources)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestLowAuthorityStillWeighted(t *testing.T) {
	// A near-zero-authority source must keep at least 0.1 weight so it
	// is never excluded entirely from the aggregate.
	rep := Evaluate([]Source{
		{URL: "https://infowars.com/a", Content: "text"},
		{URL: "https://www.reuters.com/b", Content: "text"},
	})
	high := Evaluate([]Source{{URL: "https://www.reuters.com/b", Content: "text"}})
	if rep.Overall >= high.Overall {
		t.Errorf("low-authority source had no effect: mixed %d vs high-only %d", rep.Overall, high.Overall)
	}
}

func TestExplanationMentionsBandAndTopSources(t *testing.T) {
	rep := Evaluate([]Source{{URL: "https://www.reuters.com/x", Content: "Officials confirmed the figures on Monday."}})
	for _, want := range []string{"trust level", "reuters.com", "Strongest factor"} {
		if !strings.Contains(rep.Explanation, want) {
			t.Errorf("explanation missing %q: %s", want, rep.Explanation)
		}
	}
}

func TestErrorPagePenalty(t *testing.T) {
	clean := scoreContentQuality(strings.Repeat("A sensible paragraph with facts from 2023. ", 30))
	errPage := scoreContentQuality("403 Forbidden. Access denied. Please complete the captcha.")
	if errPage >= clean {
		t.Errorf("error page scored %d, clean prose %d; want penalty", errPage, clean)
	}
}
