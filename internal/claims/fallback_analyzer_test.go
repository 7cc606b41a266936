package claims

import (
	"testing"

	"verifact/internal/model"
)

func TestFallbackAnalyzeConfirmsCorrectDate(t *testing.T) {
	v := FallbackAnalyze("Albert Einstein was born on March 14, 1879 in Ulm.")
	if v == nil {
		t.Fatal("expected a verdict for a known birth-date claim")
	}
	if v.Status != model.StatusConfirms {
		t.Errorf("status = %s, want Confirms", v.Status)
	}
	if v.Source == "" || v.VerifiedFact == "" {
		t.Errorf("verdict missing fields: %+v", v)
	}
}

func TestFallbackAnalyzeRefutesWrongDate(t *testing.T) {
	v := FallbackAnalyze("Albert Einstein was born on March 14, 1912.")
	if v == nil {
		t.Fatal("expected a verdict")
	}
	if v.Status != model.StatusRefutes {
		t.Errorf("status = %s, want Refutes", v.Status)
	}
}

func TestFallbackAnalyzeDeclinesUnknownEntity(t *testing.T) {
	if v := FallbackAnalyze("Jane Nobody was born on May 2, 1950."); v != nil {
		t.Errorf("expected nil for unknown entity, got %+v", v)
	}
}

func TestFallbackAnalyzeDeclinesWithoutDateShape(t *testing.T) {
	if v := FallbackAnalyze("Albert Einstein was born somewhere in Germany."); v != nil {
		t.Errorf("expected nil without a date shape, got %+v", v)
	}
	if v := FallbackAnalyze("Apple's market share reached 23.4% last quarter."); v != nil {
		t.Errorf("expected nil for a non-date claim, got %+v", v)
	}
}
