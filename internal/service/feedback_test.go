package service

import (
	"testing"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

func TestIssuesThresholds(t *testing.T) {
	engine := FeedbackEngine{}
	reference := domain.VoiceVector{Tone: domain.ToneProfessional}

	// 70 exacto no genera issue; apenas por debajo, severidad medium.
	scores := map[string]float64{
		ScoreTone:              70.0,
		ScoreFormality:         69.9,
		ScoreVocabulary:        50.0,
		ScoreSentenceStructure: 49.9,
	}
	issues := engine.Issues(scores, reference)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].Type != ScoreFormality || issues[0].Severity != domain.SeverityMedium {
		t.Fatalf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Type != ScoreVocabulary || issues[1].Severity != domain.SeverityMedium {
		t.Fatalf("expected medium severity at exactly 50, got %+v", issues[1])
	}
	if issues[2].Type != ScoreSentenceStructure || issues[2].Severity != domain.SeverityHigh {
		t.Fatalf("expected high severity below 50, got %+v", issues[2])
	}
}

func TestIssuesStableOrder(t *testing.T) {
	engine := FeedbackEngine{}
	reference := domain.VoiceVector{Tone: domain.ToneCasual}

	scores := map[string]float64{
		ScoreSentenceStructure: 10,
		ScoreVocabulary:        20,
		ScoreFormality:         30,
		ScoreTone:              40,
	}
	issues := engine.Issues(scores, reference)
	wantOrder := []string{ScoreTone, ScoreFormality, ScoreVocabulary, ScoreSentenceStructure}
	if len(issues) != len(wantOrder) {
		t.Fatalf("expected %d issues, got %d", len(wantOrder), len(issues))
	}
	for i, want := range wantOrder {
		if issues[i].Type != want {
			t.Fatalf("issue %d: expected %s, got %s", i, want, issues[i].Type)
		}
	}
}

func TestIssueMessages(t *testing.T) {
	engine := FeedbackEngine{}
	reference := domain.VoiceVector{Tone: domain.ToneEnthusiastic}

	scores := map[string]float64{
		ScoreTone:              60,
		ScoreFormality:         40,
		ScoreVocabulary:        30,
		ScoreSentenceStructure: 20,
	}
	issues := engine.Issues(scores, reference)

	wantSuggestions := map[string]string{
		ScoreTone:              "Try using a more enthusiastic tone",
		ScoreFormality:         "Adjust the formality level to match your brand",
		ScoreVocabulary:        "Use vocabulary that aligns with your brand complexity",
		ScoreSentenceStructure: "Adjust sentence length to match your brand style",
	}
	for _, issue := range issues {
		if issue.Description != "The "+issue.Type+" doesn't match your brand voice" {
			t.Fatalf("unexpected description %q", issue.Description)
		}
		if issue.Suggestion != wantSuggestions[issue.Type] {
			t.Fatalf("unexpected suggestion for %s: %q", issue.Type, issue.Suggestion)
		}
	}
}

func TestIssuesEmptyWhenAllAboveThreshold(t *testing.T) {
	engine := FeedbackEngine{}

	scores := map[string]float64{
		ScoreTone:              100,
		ScoreFormality:         75,
		ScoreVocabulary:        70,
		ScoreSentenceStructure: 100,
	}
	issues := engine.Issues(scores, domain.VoiceVector{})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestVerdictBoundaries(t *testing.T) {
	engine := FeedbackEngine{}

	cases := []struct {
		score float64
		want  string
	}{
		{100, domain.VerdictOnBrand},
		{80, domain.VerdictOnBrand},
		{79.99, domain.VerdictMinorIssues},
		{60, domain.VerdictMinorIssues},
		{59.99, domain.VerdictOffBrand},
		{0, domain.VerdictOffBrand},
	}
	for _, tc := range cases {
		if got := engine.Verdict(tc.score); got != tc.want {
			t.Fatalf("Verdict(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestVerdictMonotonic(t *testing.T) {
	engine := FeedbackEngine{}

	rank := map[string]int{
		domain.VerdictOffBrand:    0,
		domain.VerdictMinorIssues: 1,
		domain.VerdictOnBrand:     2,
	}
	prev := engine.Verdict(0)
	for score := 0.0; score <= 100.0; score += 0.5 {
		curr := engine.Verdict(score)
		if rank[curr] < rank[prev] {
			t.Fatalf("verdict regressed at score %v: %s -> %s", score, prev, curr)
		}
		prev = curr
	}
}
