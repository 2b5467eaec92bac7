package analyzer

import (
	"context"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// Analyzer define la capacidad de caracterizar la voz de un texto.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (domain.VoiceVector, error)
}
