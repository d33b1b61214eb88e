package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompliancePercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{
			name:      "Coleção vazia conta como 100%",
			completed: 0,
			total:     0,
			expected:  100,
		},
		{
			name:      "Total negativo também conta como 100%",
			completed: 3,
			total:     -1,
			expected:  100,
		},
		{
			name:      "Metade concluída",
			completed: 2,
			total:     4,
			expected:  50,
		},
		{
			name:      "Arredondamento para cima",
			completed: 2,
			total:     3,
			expected:  67,
		},
		{
			name:      "Arredondamento para baixo",
			completed: 1,
			total:     3,
			expected:  33,
		},
		{
			name:      "Completado acima do total é limitado a 100",
			completed: 7,
			total:     5,
			expected:  100,
		},
		{
			name:      "Completado negativo é limitado a 0",
			completed: -2,
			total:     5,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompliancePercent(tt.completed, tt.total))
		})
	}
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name          string
		percent       int
		total         int
		hasAgreements bool
		hasSigned     bool
		expected      HealthLevel
	}{
		{
			name:     "Avanço abaixo do limiar é risco",
			percent:  29,
			total:    10,
			expected: HealthRisk,
		},
		{
			name:     "Exatamente no limiar não é risco",
			percent:  30,
			total:    10,
			expected: HealthWarning,
		},
		{
			name:          "Acordos sem assinatura é risco mesmo com bom avanço",
			percent:       80,
			total:         10,
			hasAgreements: true,
			hasSigned:     false,
			expected:      HealthRisk,
		},
		{
			name:          "Acordo assinado com pendências é aviso",
			percent:       80,
			total:         10,
			hasAgreements: true,
			hasSigned:     true,
			expected:      HealthWarning,
		},
		{
			name:          "Tudo concluído e assinado é ok",
			percent:       100,
			total:         10,
			hasAgreements: true,
			hasSigned:     true,
			expected:      HealthOK,
		},
		{
			name:     "Sem itens e sem acordos é ok",
			percent:  100,
			total:    0,
			expected: HealthOK,
		},
		{
			name:     "Percentual baixo sem itens não é risco",
			percent:  0,
			total:    0,
			expected: HealthWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyHealth(tt.percent, tt.total, tt.hasAgreements, tt.hasSigned))
		})
	}
}

func TestAgreementStatusIsSigned(t *testing.T) {
	assert.True(t, AgreementStatusAceptado.IsSigned())
	assert.True(t, AgreementStatusFirmado.IsSigned())
	assert.False(t, AgreementStatusPropuesto.IsSigned())
	assert.False(t, AgreementStatusRechazado.IsSigned())
}
