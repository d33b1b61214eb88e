package domain

import "time"

type RecommendationStatus string

const (
	RecommendationStatusPendiente  RecommendationStatus = "pendiente"
	RecommendationStatusAplicada   RecommendationStatus = "aplicada"
	RecommendationStatusDescartada RecommendationStatus = "descartada"
)

func ValidRecommendationStatus(s string) bool {
	switch RecommendationStatus(s) {
	case RecommendationStatusPendiente, RecommendationStatusAplicada, RecommendationStatusDescartada:
		return true
	}
	return false
}

// Recommendation é uma sugestão comercial produzida pelo serviço externo
// de recomendações para um evento
type Recommendation struct {
	ID          string               `json:"id"`
	EventID     string               `json:"event_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Status      RecommendationStatus `json:"status"`
	FetchedAt   time.Time            `json:"fetched_at"`
}
