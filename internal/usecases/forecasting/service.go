package forecasting

import (
	"errors"
	"math"
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

var ErrEventNotFound = errors.New("evento não encontrado")

// ForecastService projeta as vendas de ingressos de um evento contra a
// meta de ocupação
type ForecastService interface {
	Forecast(eventID string) (*domain.SalesForecast, error)
	DailySeries(eventID string) ([]*DailyPoint, error)
}

type Service struct {
	events  repository.EventRepository
	tickets repository.TicketRepository
	now     func() time.Time
}

func NewService(events repository.EventRepository, tickets repository.TicketRepository) ForecastService {
	return &Service{
		events:  events,
		tickets: tickets,
		now:     time.Now,
	}
}

// DailyPoint é um ponto da série diária de vendas usada no gráfico do painel
type DailyPoint struct {
	Date       time.Time `json:"date"`
	Sold       int       `json:"sold"`
	Cumulative int       `json:"cumulative"`
}

// Forecast monta o panorama de vendas na data de referência corrente.
// A expectativa do dia é interpolação linear da meta entre o início da
// campanha e a data do evento. Quando não há lotes importados, a série
// determinística simulada entra no lugar dos números reais.
func (s *Service) Forecast(eventID string) (*domain.SalesForecast, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	stats, err := s.tickets.GetStatsByEventID(eventID)
	if err != nil {
		return nil, err
	}

	reference := s.now()
	if reference.Before(event.CampaignStartAt) {
		reference = event.CampaignStartAt
	}
	if reference.After(event.Date) {
		reference = event.Date
	}

	totalDays := utils.DaysBetween(event.CampaignStartAt, event.Date)
	if totalDays < 1 {
		totalDays = 1
	}

	elapsed := utils.DaysBetween(event.CampaignStartAt, reference)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > totalDays {
		elapsed = totalDays
	}

	target := int(math.Round(float64(event.Capacity) * domain.TargetOccupancy))

	source := domain.ForecastSourceImports
	sold := stats.TotalSold
	if stats.ImportCount == 0 {
		source = domain.ForecastSourceSimulated
		sold = simulatedCumulative(event, elapsed)
	}

	expectedToday := int(math.Round(float64(target) * float64(elapsed) / float64(totalDays)))

	daysRemaining := utils.DaysBetween(reference, event.Date)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	requiredPace := 0.0
	if daysRemaining > 0 && target > sold {
		requiredPace = utils.RoundWithTwoDecimalPlace(float64(target-sold) / float64(daysRemaining))
	}

	dailyAverage := 0.0
	if elapsed > 0 {
		dailyAverage = utils.RoundWithTwoDecimalPlace(float64(sold) / float64(elapsed))
	}

	forecast := &domain.SalesForecast{
		EventID:             event.ID,
		ReferenceDate:       reference,
		Capacity:            event.Capacity,
		TargetTickets:       target,
		SoldTickets:         sold,
		ExpectedToday:       expectedToday,
		Gap:                 expectedToday - sold,
		DaysRemaining:       daysRemaining,
		RequiredDailyPace:   requiredPace,
		CurrentDailyAverage: dailyAverage,
		Source:              source,
		Scenarios:           buildScenarios(sold, target, daysRemaining, dailyAverage),
	}

	return forecast, nil
}

func buildScenarios(sold, target, daysRemaining int, dailyAverage float64) []domain.ScenarioProjection {
	scenarios := []struct {
		name   string
		factor float64
	}{
		{"conservador", domain.ScenarioFactorConservative},
		{"realista", domain.ScenarioFactorRealistic},
		{"optimista", domain.ScenarioFactorOptimistic},
	}

	projections := make([]domain.ScenarioProjection, 0, len(scenarios))
	for _, scenario := range scenarios {
		projected := sold + int(math.Round(dailyAverage*scenario.factor*float64(daysRemaining)))
		projections = append(projections, domain.ScenarioProjection{
			Name:           scenario.name,
			Factor:         scenario.factor,
			ProjectedTotal: projected,
			TargetReached:  projected >= target,
		})
	}

	return projections
}

// DailySeries devolve a série diária de vendas até a data de referência:
// agregada dos lotes importados quando existem, simulada caso contrário
func (s *Service) DailySeries(eventID string) ([]*DailyPoint, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	imports, err := s.tickets.ListImportsByEventID(eventID)
	if err != nil {
		return nil, err
	}

	reference := s.now()
	if reference.After(event.Date) {
		reference = event.Date
	}

	elapsed := utils.DaysBetween(event.CampaignStartAt, reference)
	if elapsed < 0 {
		elapsed = 0
	}

	if len(imports) == 0 {
		return simulatedSeries(event, elapsed), nil
	}

	return importSeries(event, imports, elapsed), nil
}

func importSeries(event *domain.Event, imports []*domain.TicketImport, elapsed int) []*DailyPoint {
	perDay := make(map[int]int)
	for _, imported := range imports {
		day := utils.DaysBetween(event.CampaignStartAt, imported.ImportedAt)
		if day < 0 {
			day = 0
		}
		perDay[day] += imported.Quantity
	}

	points := make([]*DailyPoint, 0, elapsed+1)
	cumulative := 0
	for day := 0; day <= elapsed; day++ {
		cumulative += perDay[day]
		points = append(points, &DailyPoint{
			Date:       event.CampaignStartAt.AddDate(0, 0, day),
			Sold:       perDay[day],
			Cumulative: cumulative,
		})
	}

	return points
}
