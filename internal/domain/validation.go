package domain

// ProfileView es la vista del perfil que devuelve la API y que se cachea por
// customerId.
type ProfileView struct {
	ProfileID       string      `json:"profileId"`
	CustomerID      string      `json:"customerId"`
	BrandName       string      `json:"brandName"`
	VoiceAttributes VoiceVector `json:"voiceAttributes"`
	ConfidenceScore float64     `json:"confidenceScore"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"createdAt"`
}

// ValidationIssue identifica un atributo con puntaje bajo y su sugerencia.
type ValidationIssue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// ValidationResult es la respuesta sincronica de validar contenido contra el
// perfil de marca.
type ValidationResult struct {
	CustomerID       string             `json:"customerId"`
	ConsistencyScore float64            `json:"consistencyScore"`
	Verdict          string             `json:"verdict"`
	Issues           []ValidationIssue  `json:"issues"`
	DetailedScores   map[string]float64 `json:"detailedScores"`
	ProcessingTimeMs int64              `json:"processingTimeMs"`
}
