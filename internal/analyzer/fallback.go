package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// FallbackAnalyzer intenta el analizador remoto con un timeout acotado y cae
// al motor heuristico local ante cualquier error. Nunca falla.
type FallbackAnalyzer struct {
	remote  Analyzer
	local   HeuristicEngine
	timeout time.Duration
	logger  *zap.Logger
}

// NewFallbackAnalyzer compone remoto + heuristico. Con remote nil el motor
// heuristico atiende todas las llamadas.
func NewFallbackAnalyzer(remote Analyzer, timeout time.Duration, logger *zap.Logger) *FallbackAnalyzer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FallbackAnalyzer{
		remote:  remote,
		timeout: timeout,
		logger:  logger,
	}
}

func (a *FallbackAnalyzer) Analyze(ctx context.Context, text string) (domain.VoiceVector, error) {
	if a.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		v, err := a.remote.Analyze(remoteCtx, text)
		if err == nil {
			return v, nil
		}
		if a.logger != nil {
			a.logger.Warn("remote analyzer failed, using heuristic fallback", zap.Error(err))
		}
	}
	return a.local.Extract(text), nil
}
