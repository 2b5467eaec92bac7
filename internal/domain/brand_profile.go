package domain

import "time"

// BrandProfile asocia un cliente con su vector de voz de referencia.
// Existe a lo sumo un perfil activo por customer_id.
type BrandProfile struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	BrandName       string      `json:"brand_name"`
	VoiceAttributes VoiceVector `json:"voice_attributes"`
	SampleContent   string      `json:"sample_content"`
	ConfidenceScore float64     `json:"confidence_score"`
	Active          bool        `json:"active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Status devuelve la etiqueta de estado expuesta en la API.
func (p *BrandProfile) Status() string {
	if p.Active {
		return "active"
	}
	return "inactive"
}
