package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(events *mocks.MockEventRepository, tickets *mocks.MockTicketRepository, reference time.Time) *Service {
	return &Service{
		events:  events,
		tickets: tickets,
		now:     func() time.Time { return reference },
	}
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:              "ev-1",
		Name:            "Festival de Verano",
		Capacity:        10000,
		CampaignStartAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Date:            time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC),
	}
}

func TestForecastWithImports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)

	// 40 dias de campanha decorridos de 100
	reference := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockEvents, mockTickets, reference)

	mockEvents.EXPECT().GetEventByID("ev-1").Return(testEvent(), nil)
	mockTickets.EXPECT().GetStatsByEventID("ev-1").Return(&domain.TicketStats{
		EventID:     "ev-1",
		TotalSold:   3000,
		ImportCount: 3,
	}, nil)

	forecast, err := service.Forecast("ev-1")
	require.NoError(t, err)

	assert.Equal(t, domain.ForecastSourceImports, forecast.Source)
	assert.Equal(t, 8500, forecast.TargetTickets)
	assert.Equal(t, 3000, forecast.SoldTickets)
	assert.Equal(t, 3400, forecast.ExpectedToday)
	assert.Equal(t, 400, forecast.Gap)
	assert.Equal(t, 60, forecast.DaysRemaining)
	assert.Equal(t, 91.67, forecast.RequiredDailyPace)
	assert.Equal(t, 75.0, forecast.CurrentDailyAverage)

	require.Len(t, forecast.Scenarios, 3)
	assert.Equal(t, "conservador", forecast.Scenarios[0].Name)
	assert.Equal(t, 6600, forecast.Scenarios[0].ProjectedTotal)
	assert.False(t, forecast.Scenarios[0].TargetReached)
	assert.Equal(t, "realista", forecast.Scenarios[1].Name)
	assert.Equal(t, 7500, forecast.Scenarios[1].ProjectedTotal)
	assert.Equal(t, "optimista", forecast.Scenarios[2].Name)
	assert.Equal(t, 8850, forecast.Scenarios[2].ProjectedTotal)
	assert.True(t, forecast.Scenarios[2].TargetReached)
}

func TestForecastReferenceClamping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)

	// Depois do evento, a referência trava na data do evento
	reference := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockEvents, mockTickets, reference)

	mockEvents.EXPECT().GetEventByID("ev-1").Return(testEvent(), nil)
	mockTickets.EXPECT().GetStatsByEventID("ev-1").Return(&domain.TicketStats{
		EventID:     "ev-1",
		TotalSold:   9000,
		ImportCount: 5,
	}, nil)

	forecast, err := service.Forecast("ev-1")
	require.NoError(t, err)

	assert.True(t, forecast.ReferenceDate.Equal(testEvent().Date))
	assert.Equal(t, 0, forecast.DaysRemaining)
	assert.Equal(t, 0.0, forecast.RequiredDailyPace)
	assert.Equal(t, 8500, forecast.ExpectedToday)
}

func TestForecastSimulatedFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)

	reference := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockEvents, mockTickets, reference)

	mockEvents.EXPECT().GetEventByID("ev-1").Return(testEvent(), nil).Times(2)
	mockTickets.EXPECT().GetStatsByEventID("ev-1").Return(&domain.TicketStats{
		EventID: "ev-1",
	}, nil).Times(2)

	first, err := service.Forecast("ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ForecastSourceSimulated, first.Source)
	assert.Greater(t, first.SoldTickets, 0)
	assert.LessOrEqual(t, first.SoldTickets, testEvent().Capacity)

	// A série simulada é semeada pelo id do evento: duas consultas
	// devolvem exatamente os mesmos números
	second, err := service.Forecast("ev-1")
	require.NoError(t, err)
	assert.Equal(t, first.SoldTickets, second.SoldTickets)
	assert.Equal(t, first.Scenarios, second.Scenarios)
}

func TestForecastEventNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	service := newTestService(mockEvents, mocks.NewMockTicketRepository(ctrl), time.Now())

	mockEvents.EXPECT().GetEventByID("ev-x").Return(nil, nil)

	_, err := service.Forecast("ev-x")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDailySeriesFromImports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)

	reference := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockEvents, mockTickets, reference)

	start := testEvent().CampaignStartAt
	mockEvents.EXPECT().GetEventByID("ev-1").Return(testEvent(), nil)
	mockTickets.EXPECT().ListImportsByEventID("ev-1").Return([]*domain.TicketImport{
		{ID: "imp-1", EventID: "ev-1", Quantity: 120, ImportedAt: start},
		{ID: "imp-2", EventID: "ev-1", Quantity: 80, ImportedAt: start.AddDate(0, 0, 2)},
		{ID: "imp-3", EventID: "ev-1", Quantity: 50, ImportedAt: start.AddDate(0, 0, 2)},
	}, nil)

	points, err := service.DailySeries("ev-1")
	require.NoError(t, err)
	require.Len(t, points, 4)

	assert.Equal(t, 120, points[0].Sold)
	assert.Equal(t, 0, points[1].Sold)
	assert.Equal(t, 130, points[2].Sold)
	assert.Equal(t, 0, points[3].Sold)
	assert.Equal(t, 250, points[3].Cumulative)
}

func TestDailySeriesSimulated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)

	reference := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockEvents, mockTickets, reference)

	mockEvents.EXPECT().GetEventByID("ev-1").Return(testEvent(), nil)
	mockTickets.EXPECT().ListImportsByEventID("ev-1").Return(nil, nil)

	points, err := service.DailySeries("ev-1")
	require.NoError(t, err)
	require.Len(t, points, 11)

	cumulative := 0
	for _, point := range points {
		cumulative += point.Sold
		assert.Equal(t, cumulative, point.Cumulative)
	}
}
