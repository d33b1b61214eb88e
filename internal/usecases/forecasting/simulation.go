package forecasting

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

// A simulação é determinística: o gerador é semeado pelo id do evento,
// então o mesmo evento sempre produz a mesma série
func seededRand(eventID string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(eventID))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// simulatedDaily gera as vendas diárias simuladas da campanha inteira.
// O ritmo médio mira a meta de ocupação com variação de ±50% por dia,
// acelerando nos últimos dias de campanha.
func simulatedDaily(event *domain.Event) []int {
	totalDays := utils.DaysBetween(event.CampaignStartAt, event.Date)
	if totalDays < 1 {
		totalDays = 1
	}

	target := float64(event.Capacity) * domain.TargetOccupancy
	basePace := target / float64(totalDays)

	rng := seededRand(event.ID)
	daily := make([]int, totalDays+1)
	for day := range daily {
		pace := basePace

		// Aquecimento final: o último quarto da campanha vende mais
		if day > totalDays*3/4 {
			pace *= 1.5
		}

		jitter := 0.5 + rng.Float64()
		daily[day] = int(math.Round(pace * jitter))
	}

	return daily
}

func simulatedCumulative(event *domain.Event, elapsed int) int {
	daily := simulatedDaily(event)

	total := 0
	for day := 0; day <= elapsed && day < len(daily); day++ {
		total += daily[day]
	}

	if total > event.Capacity {
		total = event.Capacity
	}
	return total
}

func simulatedSeries(event *domain.Event, elapsed int) []*DailyPoint {
	daily := simulatedDaily(event)

	points := make([]*DailyPoint, 0, elapsed+1)
	cumulative := 0
	for day := 0; day <= elapsed && day < len(daily); day++ {
		sold := daily[day]
		if cumulative+sold > event.Capacity {
			sold = event.Capacity - cumulative
		}
		cumulative += sold

		points = append(points, &DailyPoint{
			Date:       event.CampaignStartAt.AddDate(0, 0, day),
			Sold:       sold,
			Cumulative: cumulative,
		})
	}

	return points
}
