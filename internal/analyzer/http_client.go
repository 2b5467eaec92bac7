package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// HTTPClient implementa Analyzer contra el servicio NLP remoto.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye un cliente apuntando al endpoint /analyze.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, text string) (domain.VoiceVector, error) {
	bodyBytes, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return domain.VoiceVector{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.VoiceVector{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.VoiceVector{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VoiceVector{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Warn("analyzer error response",
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", respBody),
			)
		}
		return domain.VoiceVector{}, fmt.Errorf("analyzer http error: status=%d", resp.StatusCode)
	}

	var ar analyzeResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return domain.VoiceVector{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return ar.toVector(), nil
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// analyzeResponse tolera campos ausentes aplicando los defaults del vector,
// de modo que el vector entregado rio abajo siempre este completo.
type analyzeResponse struct {
	Tone                 string   `json:"tone"`
	Formality            *float64 `json:"formality"`
	VocabularyComplexity *float64 `json:"vocabulary_complexity"`
	SentenceLength       string   `json:"sentence_length"`
	AvgSentenceLength    *float64 `json:"avg_sentence_length"`
}

func (ar analyzeResponse) toVector() domain.VoiceVector {
	v := domain.DefaultVoiceVector()
	if ar.Tone != "" {
		v.Tone = ar.Tone
	}
	if ar.Formality != nil {
		v.Formality = *ar.Formality
	}
	if ar.VocabularyComplexity != nil {
		v.VocabularyComplexity = *ar.VocabularyComplexity
	}
	if ar.SentenceLength != "" {
		v.SentenceLength = ar.SentenceLength
	}
	if ar.AvgSentenceLength != nil {
		v.AvgSentenceLength = *ar.AvgSentenceLength
	}
	return v
}
