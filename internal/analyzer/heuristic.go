package analyzer

import (
	"context"
	"regexp"
	"strings"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// HeuristicEngine extrae un vector de voz con heuristicas lexicas puras.
// Es determinista, no hace I/O y nunca falla.
type HeuristicEngine struct{}

// Marcadores de tono. El orden de evaluacion es normativo: el primer grupo
// con coincidencia gana.
var (
	enthusiasticMarkers = []string{"exciting", "amazing", "wonderful"}
	professionalMarkers = []string{"professional", "enterprise"}
	casualMarkers       = []string{"friend", "hey"}
)

var (
	formalMarkers   = []string{"therefore", "consequently", "furthermore", "moreover"}
	informalMarkers = []string{"hey", "yeah", "cool", "awesome", "gonna"}
)

var sentenceSplitRE = regexp.MustCompile(`[.!?]+`)

// Analyze implementa Analyzer sobre el motor heuristico.
func (e HeuristicEngine) Analyze(_ context.Context, text string) (domain.VoiceVector, error) {
	return e.Extract(text), nil
}

// Extract reduce un texto libre a su vector de voz. Para entradas vacias o
// de solo espacios emite el vector por defecto.
func (e HeuristicEngine) Extract(text string) domain.VoiceVector {
	if strings.TrimSpace(text) == "" {
		return domain.DefaultVoiceVector()
	}
	avg := e.AvgSentenceLength(text)
	return domain.VoiceVector{
		Tone:                 e.DetectTone(text),
		Formality:            e.FormalityScore(text),
		VocabularyComplexity: e.VocabularyComplexity(text),
		SentenceLength:       e.CategorizeSentenceLength(avg),
		AvgSentenceLength:    avg,
	}
}

// DetectTone busca marcadores por substring sobre el texto en minusculas.
func (HeuristicEngine) DetectTone(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, enthusiasticMarkers) {
		return domain.ToneEnthusiastic
	}
	if containsAny(lower, professionalMarkers) {
		return domain.ToneProfessional
	}
	if containsAny(lower, casualMarkers) {
		return domain.ToneCasual
	}
	return domain.ToneNeutral
}

// FormalityScore cuenta marcadores formales e informales distintos (cada uno
// a lo sumo una vez); un apostrofe suma un marcador informal como proxy de
// contracciones. Sin marcadores devuelve 0.5.
func (HeuristicEngine) FormalityScore(text string) float64 {
	lower := strings.ToLower(text)

	formal := 0
	for _, m := range formalMarkers {
		if strings.Contains(lower, m) {
			formal++
		}
	}

	informal := 0
	for _, m := range informalMarkers {
		if strings.Contains(lower, m) {
			informal++
		}
	}
	if strings.Contains(text, "'") {
		informal++
	}

	total := formal + informal
	if total == 0 {
		return 0.5
	}
	return float64(formal) / float64(total)
}

// VocabularyComplexity es la fraccion de tokens con mas de 8 caracteres.
// Los tokens salen de partir por espacios sin limpiar puntuacion, asi que
// "solutions." mide 10 y cuenta como complejo.
func (HeuristicEngine) VocabularyComplexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0.0
	}
	complexWords := 0
	for _, w := range words {
		if len(w) > 8 {
			complexWords++
		}
	}
	return float64(complexWords) / float64(len(words))
}

// AvgSentenceLength parte el texto por [.!?]+ y promedia palabras por
// fragmento. Los fragmentos vacios al final del split se descartan; un
// fragmento sin palabras cuenta como un token.
func (HeuristicEngine) AvgSentenceLength(text string) float64 {
	fragments := sentenceSplitRE.Split(text, -1)
	for len(fragments) > 0 && fragments[len(fragments)-1] == "" {
		fragments = fragments[:len(fragments)-1]
	}
	if len(fragments) == 0 {
		return 0.0
	}

	totalWords := 0
	for _, f := range fragments {
		n := len(strings.Fields(strings.TrimSpace(f)))
		if n == 0 {
			n = 1
		}
		totalWords += n
	}
	return float64(totalWords) / float64(len(fragments))
}

// CategorizeSentenceLength mapea el promedio a una categoria.
func (HeuristicEngine) CategorizeSentenceLength(avg float64) string {
	if avg < 10 {
		return domain.SentenceShort
	}
	if avg < 20 {
		return domain.SentenceMedium
	}
	return domain.SentenceLong
}

// Confidence refleja la completitud del vector extraido: 0.9 para vectores
// derivados de texto real, 0.7 cuando solo se pudo emitir el por defecto.
func Confidence(v domain.VoiceVector) float64 {
	if v == domain.DefaultVoiceVector() {
		return 0.7
	}
	return 0.9
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
