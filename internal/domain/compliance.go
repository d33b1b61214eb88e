package domain

import "math"

// HealthLevel é a classificação grosseira de saúde de uma relação
// comercial (sponsor ou influencer)
type HealthLevel string

const (
	HealthOK      HealthLevel = "ok"
	HealthWarning HealthLevel = "warning"
	HealthRisk    HealthLevel = "risk"
)

// Limiar abaixo do qual o avanço é classificado como risco. Regra de
// negócio fixa, sem superfície de configuração.
const riskCompletionThreshold = 30

// CompliancePercent calcula o percentual de conclusão arredondado e
// limitado a [0, 100]. Coleção vazia conta como 100%: nada comprometido
// significa nada pendente. A convenção é única para todo o sistema.
func CompliancePercent(completed, total int) int {
	if total <= 0 {
		return 100
	}

	percent := int(math.Round(float64(completed) / float64(total) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ChecklistProgress é o avanço de uma coleção de itens de checklist
type ChecklistProgress struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// ComplianceReport é o relatório derivado de compliance de uma entidade.
// Nunca é armazenado na entidade: é recalculado a cada consulta (os
// snapshots históricos ficam em tabela própria, gerados pelo scheduler).
type ComplianceReport struct {
	EntityType         string              `json:"entity_type"`
	EntityID           string              `json:"entity_id"`
	EntityName         string              `json:"entity_name"`
	Completed          int                 `json:"completed"`
	Total              int                 `json:"total"`
	Percent            int                 `json:"percent"`
	HasSignedAgreement bool                `json:"has_signed_agreement"`
	Health             HealthLevel         `json:"health"`
	Breakdown          []ChecklistProgress `json:"breakdown"`
}

// ClassifyHealth aplica a cadeia ordenada de regras:
// risco quando o avanço fica abaixo do limiar (havendo itens) ou quando
// existem acordos e nenhum assinado; aviso quando há pendências; ok no resto.
func ClassifyHealth(percent, total int, hasAgreements, hasSigned bool) HealthLevel {
	if total > 0 && percent < riskCompletionThreshold {
		return HealthRisk
	}

	if hasAgreements && !hasSigned {
		return HealthRisk
	}

	if percent < 100 {
		return HealthWarning
	}

	return HealthOK
}
