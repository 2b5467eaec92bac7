package domain

// Tonos que el extractor reconoce.
const (
	ToneEnthusiastic = "enthusiastic"
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneNeutral      = "neutral"
)

// Categorias de longitud de oracion.
const (
	SentenceShort  = "short"
	SentenceMedium = "medium"
	SentenceLong   = "long"
)

// Veredictos de consistencia de marca.
const (
	VerdictOnBrand     = "on_brand"
	VerdictMinorIssues = "minor_issues"
	VerdictOffBrand    = "off_brand"
)

// Severidades de un issue de validacion.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// VoiceVector es la caracterizacion estructurada de un texto: dos etiquetas
// enumeradas y tres escalares. Siempre esta completo; el extractor emite los
// cinco atributos.
type VoiceVector struct {
	Tone                 string  `json:"tone"`
	Formality            float64 `json:"formality"`
	VocabularyComplexity float64 `json:"vocabulary_complexity"`
	SentenceLength       string  `json:"sentence_length"`
	AvgSentenceLength    float64 `json:"avg_sentence_length"`
}

// DefaultVoiceVector es el vector emitido para entradas vacias o degeneradas.
func DefaultVoiceVector() VoiceVector {
	return VoiceVector{
		Tone:                 ToneNeutral,
		Formality:            0.5,
		VocabularyComplexity: 0.0,
		SentenceLength:       SentenceMedium,
		AvgSentenceLength:    0.0,
	}
}
