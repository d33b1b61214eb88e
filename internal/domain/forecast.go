package domain

import "time"

// TargetOccupancy é a meta de ocupação usada nas projeções de venda
const TargetOccupancy = 0.85

// Fatores fixos dos três cenários de projeção
const (
	ScenarioFactorConservative = 0.8
	ScenarioFactorRealistic    = 1.0
	ScenarioFactorOptimistic   = 1.3
)

type ForecastSource string

const (
	// ForecastSourceImports indica projeção sobre estatísticas reais de ingressos
	ForecastSourceImports ForecastSource = "imports"
	// ForecastSourceSimulated indica a série diária determinística de fallback
	ForecastSourceSimulated ForecastSource = "simulated"
)

// ScenarioProjection é uma extrapolação linear de ponto único:
// média diária corrente multiplicada pelo fator do cenário até a data
// do evento. Sem suavização nem intervalos de confiança.
type ScenarioProjection struct {
	Name           string  `json:"name"`
	Factor         float64 `json:"factor"`
	ProjectedTotal int     `json:"projected_total"`
	TargetReached  bool    `json:"target_reached"`
}

// SalesForecast é o panorama de vendas de um evento em uma data de referência
type SalesForecast struct {
	EventID             string               `json:"event_id"`
	ReferenceDate       time.Time            `json:"reference_date"`
	Capacity            int                  `json:"capacity"`
	TargetTickets       int                  `json:"target_tickets"`
	SoldTickets         int                  `json:"sold_tickets"`
	ExpectedToday       int                  `json:"expected_today"`
	Gap                 int                  `json:"gap"`
	DaysRemaining       int                  `json:"days_remaining"`
	RequiredDailyPace   float64              `json:"required_daily_pace"`
	CurrentDailyAverage float64              `json:"current_daily_average"`
	Scenarios           []ScenarioProjection `json:"scenarios"`
	Source              ForecastSource       `json:"source"`
}
