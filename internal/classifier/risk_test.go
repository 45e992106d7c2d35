package classifier

import (
	"testing"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

func TestClassifyRiskNeutralDefault(t *testing.T) {
	result := ClassifyRisk([]*domain.Post{post("hello world")})

	if result.Category != domain.RiskModerate {
		t.Errorf("category = %s, want moderate", result.Category)
	}
	if result.Score != 50 {
		t.Errorf("score = %v, want 50", result.Score)
	}
	if len(result.Evidence) != 0 {
		t.Errorf("evidence should be empty, got %v", result.Evidence)
	}
}

func TestClassifyRiskAggressive(t *testing.T) {
	result := ClassifyRisk([]*domain.Post{post("0dte on margin, full leverage yolo")})

	if result.Category != domain.RiskAggressive {
		t.Errorf("category = %s, want aggressive", result.Category)
	}
	if result.Score != 100 {
		t.Errorf("score = %v, want 100", result.Score)
	}
}

func TestClassifyRiskConservative(t *testing.T) {
	// One aggressive signal against three conservative: 25, below 30.
	result := ClassifyRisk([]*domain.Post{
		post("leverage is tempting"),
		post("but I prefer safe blue chip names with a dividend"),
	})

	if result.Category != domain.RiskConservative {
		t.Errorf("category = %s, want conservative", result.Category)
	}
	if result.Score != 25 {
		t.Errorf("score = %v, want 25", result.Score)
	}
}

func TestClassifyRiskModerateUnionEvidence(t *testing.T) {
	// One aggressive, one conservative: score 50, evidence from both sides.
	result := ClassifyRisk([]*domain.Post{post("margin on stable names")})

	if result.Category != domain.RiskModerate {
		t.Fatalf("category = %s, want moderate", result.Category)
	}
	if result.Score != 50 {
		t.Errorf("score = %v, want 50", result.Score)
	}
	if len(result.Evidence) != 2 {
		t.Errorf("expected union evidence of both sides, got %v", result.Evidence)
	}
}

func TestClassifyRiskScoreRounds(t *testing.T) {
	// 2 aggressive of 3 total: 66.67 rounds to 67, moderate.
	result := ClassifyRisk([]*domain.Post{post("yolo on margin, keeping it safe otherwise")})

	if result.Score != 67 {
		t.Errorf("score = %v, want 67", result.Score)
	}
	if result.Category != domain.RiskModerate {
		t.Errorf("category = %s, want moderate", result.Category)
	}
}
