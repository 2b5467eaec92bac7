package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

type stubAnalyzer struct {
	vector domain.VoiceVector
	err    error
	calls  int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) (domain.VoiceVector, error) {
	s.calls++
	if s.err != nil {
		return domain.VoiceVector{}, s.err
	}
	return s.vector, nil
}

func TestFallbackAnalyzerUsesRemote(t *testing.T) {
	remote := &stubAnalyzer{vector: domain.VoiceVector{
		Tone:                 domain.ToneEnthusiastic,
		Formality:            0.8,
		VocabularyComplexity: 0.4,
		SentenceLength:       domain.SentenceLong,
		AvgSentenceLength:    22,
	}}
	a := NewFallbackAnalyzer(remote, time.Second, zap.NewNop())

	got, err := a.Analyze(context.Background(), "some marketing copy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != remote.vector {
		t.Fatalf("expected remote vector, got %+v", got)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote call, got %d", remote.calls)
	}
}

func TestFallbackAnalyzerFallsBackOnError(t *testing.T) {
	remote := &stubAnalyzer{err: errors.New("analyzer down")}
	a := NewFallbackAnalyzer(remote, time.Second, zap.NewNop())

	text := "Our enterprise platform delivers professional results."
	got, err := a.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("fallback must never fail, got %v", err)
	}
	want := HeuristicEngine{}.Extract(text)
	if got != want {
		t.Fatalf("expected heuristic vector %+v, got %+v", want, got)
	}
}

func TestFallbackAnalyzerWithoutRemote(t *testing.T) {
	a := NewFallbackAnalyzer(nil, time.Second, zap.NewNop())

	got, err := a.Analyze(context.Background(), "hey friend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Tone != domain.ToneCasual {
		t.Fatalf("expected heuristic casual tone, got %q", got.Tone)
	}
}
