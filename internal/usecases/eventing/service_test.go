package eventing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(events *mocks.MockEventRepository, tickets *mocks.MockTicketRepository) EventService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(events, tickets, ids)
}

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)
	service := newTestService(mockEvents, mockTickets)

	mockEvents.EXPECT().
		CreateEvent(gomock.Any()).
		DoAndReturn(func(event *domain.Event) error {
			assert.Equal(t, "id-1", event.ID)
			assert.Equal(t, domain.EventStatusBorrador, event.Status)
			return nil
		})

	event, err := service.CreateEvent(&EventRequest{
		Name:            "Festival de Verano",
		Venue:           "Parque Central",
		City:            "Montevideo",
		Capacity:        15000,
		TicketPrice:     85,
		CampaignStartAt: "2026-01-15",
		Date:            "2026-06-20",
	})
	require.NoError(t, err)
	assert.Equal(t, 15000, event.Capacity)
}

func TestCreateEventValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  *EventRequest
	}{
		{
			name: "sem nome",
			req:  &EventRequest{Capacity: 100, Date: "2026-06-20"},
		},
		{
			name: "capacidade zero",
			req:  &EventRequest{Name: "Festival", Date: "2026-06-20"},
		},
		{
			name: "sem data",
			req:  &EventRequest{Name: "Festival", Capacity: 100},
		},
		{
			name: "data mal formatada",
			req:  &EventRequest{Name: "Festival", Capacity: 100, Date: "20/06/2026"},
		},
		{
			name: "campanha depois do evento",
			req:  &EventRequest{Name: "Festival", Capacity: 100, CampaignStartAt: "2026-07-01", Date: "2026-06-20"},
		},
		{
			name: "status desconhecido",
			req:  &EventRequest{Name: "Festival", Capacity: 100, Date: "2026-06-20", Status: stringPtr("cancelado")},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockEventRepository(ctrl), mocks.NewMockTicketRepository(ctrl))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateEvent(tc.req)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestImportTickets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)
	service := newTestService(mockEvents, mockTickets)

	mockEvents.EXPECT().
		GetEventByID("ev-1").
		Return(&domain.Event{ID: "ev-1", Name: "Festival"}, nil)

	mockTickets.EXPECT().
		SaveImport(gomock.Any()).
		DoAndReturn(func(ticketImport *domain.TicketImport) error {
			assert.Equal(t, "ev-1", ticketImport.EventID)
			// Sem origem informada, o lote é registrado como manual
			assert.Equal(t, "manual", ticketImport.Source)
			assert.False(t, ticketImport.ImportedAt.IsZero())
			return nil
		})

	ticketImport, err := service.ImportTickets("ev-1", &TicketImportRequest{Quantity: 350})
	require.NoError(t, err)
	assert.Equal(t, 350, ticketImport.Quantity)
}

func TestImportTicketsInvalidQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockEventRepository(ctrl), mocks.NewMockTicketRepository(ctrl))

	_, err := service.ImportTickets("ev-1", &TicketImportRequest{Source: "ticketera", Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestImportTicketsEventNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	service := newTestService(mockEvents, mocks.NewMockTicketRepository(ctrl))

	mockEvents.EXPECT().
		GetEventByID("ev-x").
		Return(nil, nil)

	_, err := service.ImportTickets("ev-x", &TicketImportRequest{Quantity: 10})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestTicketStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockTickets := mocks.NewMockTicketRepository(ctrl)
	service := newTestService(mockEvents, mockTickets)

	mockEvents.EXPECT().
		GetEventByID("ev-1").
		Return(&domain.Event{ID: "ev-1"}, nil)

	mockTickets.EXPECT().
		GetStatsByEventID("ev-1").
		Return(&domain.TicketStats{EventID: "ev-1", TotalSold: 2030, ImportCount: 2}, nil)

	stats, err := service.TicketStats("ev-1")
	require.NoError(t, err)
	assert.Equal(t, 2030, stats.TotalSold)
	assert.Equal(t, 2, stats.ImportCount)
}

func stringPtr(s string) *string {
	return &s
}
