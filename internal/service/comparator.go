package service

import (
	"math"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// Claves de los puntajes detallados, en el orden estable de reporte.
const (
	ScoreTone              = "tone"
	ScoreFormality         = "formality"
	ScoreVocabulary        = "vocabulary"
	ScoreSentenceStructure = "sentence_structure"
)

var scoreOrder = []string{ScoreTone, ScoreFormality, ScoreVocabulary, ScoreSentenceStructure}

// ComparisonEngine convierte pares de vectores de voz en puntajes de
// similitud por atributo y un puntaje agregado, todos en [0, 100].
// Es puro y determinista.
type ComparisonEngine struct{}

// Compare devuelve el mapa de puntajes detallados y su promedio aritmetico.
// avg_sentence_length es informativo y no participa del puntaje.
func (ComparisonEngine) Compare(reference, candidate domain.VoiceVector) (map[string]float64, float64) {
	scores := map[string]float64{
		ScoreTone:              compareTone(reference.Tone, candidate.Tone),
		ScoreFormality:         compareScalar(reference.Formality, candidate.Formality, 200),
		ScoreVocabulary:        compareScalar(reference.VocabularyComplexity, candidate.VocabularyComplexity, 150),
		ScoreSentenceStructure: compareSentenceStructure(reference.SentenceLength, candidate.SentenceLength),
	}
	return scores, aggregateScore(scores)
}

func compareTone(reference, candidate string) float64 {
	if reference == candidate {
		return 100.0
	}
	return 60.0
}

func compareScalar(reference, candidate, penalty float64) float64 {
	score := 100.0 - math.Abs(reference-candidate)*penalty
	if score < 0 {
		return 0.0
	}
	return score
}

func compareSentenceStructure(reference, candidate string) float64 {
	if reference == candidate {
		return 100.0
	}
	return 70.0
}

func aggregateScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
