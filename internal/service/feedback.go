package service

import (
	"fmt"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// FeedbackEngine convierte puntajes bajos en issues accionables y deriva el
// veredicto categorico del puntaje agregado.
type FeedbackEngine struct{}

// Issues recorre los puntajes en orden estable y emite un issue por cada
// atributo debajo de 70; la severidad es high debajo de 50, medium en el
// resto del rango.
func (FeedbackEngine) Issues(scores map[string]float64, reference domain.VoiceVector) []domain.ValidationIssue {
	issues := make([]domain.ValidationIssue, 0)
	for _, attr := range scoreOrder {
		score, ok := scores[attr]
		if !ok || score >= 70 {
			continue
		}
		severity := domain.SeverityMedium
		if score < 50 {
			severity = domain.SeverityHigh
		}
		issues = append(issues, domain.ValidationIssue{
			Type:        attr,
			Severity:    severity,
			Description: fmt.Sprintf("The %s doesn't match your brand voice", attr),
			Suggestion:  suggestionFor(attr, reference),
		})
	}
	return issues
}

func suggestionFor(attr string, reference domain.VoiceVector) string {
	switch attr {
	case ScoreTone:
		return "Try using a more " + reference.Tone + " tone"
	case ScoreFormality:
		return "Adjust the formality level to match your brand"
	case ScoreVocabulary:
		return "Use vocabulary that aligns with your brand complexity"
	case ScoreSentenceStructure:
		return "Adjust sentence length to match your brand style"
	}
	return "Review this aspect against your brand guidelines"
}

// Verdict mapea el puntaje de consistencia a la etiqueta categorica.
// Se computa independiente de los issues: un veredicto minor_issues puede
// venir con lista vacia si todos los atributos caen en [70, 80).
func (FeedbackEngine) Verdict(consistencyScore float64) string {
	switch {
	case consistencyScore >= 80:
		return domain.VerdictOnBrand
	case consistencyScore >= 60:
		return domain.VerdictMinorIssues
	default:
		return domain.VerdictOffBrand
	}
}
