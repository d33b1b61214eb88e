package logistics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

func newTestService() LogisticsService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(inmemory.NewArtistStore(nil), inmemory.NewProviderStore(nil), ids)
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateArtist(t *testing.T) {
	service := newTestService()

	artist, err := service.CreateArtist(&ArtistRequest{
		Name:  "La Banda del Río",
		Genre: "rock",
		Stage: "principal",
		Fee:   120000,
	})
	require.NoError(t, err)

	view, err := service.GetArtist(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.PendingLogistics)

	_, err = service.CreateArtist(&ArtistRequest{Fee: -1})
	require.Error(t, err)
}

func TestArtistRecordsByKind(t *testing.T) {
	service := newTestService()

	artist, err := service.CreateArtist(&ArtistRequest{Name: "La Banda"})
	require.NoError(t, err)

	hotel, err := service.AddArtistRecord(artist.ID, domain.LogisticsKindHotel, &RecordRequest{
		Description: "Hotel Plaza, 2 noches",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusPendiente), hotel.Status)

	rider, err := service.AddArtistRecord(artist.ID, domain.LogisticsKindRider, &RecordRequest{
		Description: "Backline completo",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ChecklistItemStatusPendiente), rider.Status)

	// Status de checklist não vale para reservas
	_, err = service.AddArtistRecord(artist.ID, domain.LogisticsKindFlight, &RecordRequest{
		Description: "Vuelo MVD-EZE",
		Status:      stringPtr("completado"),
	})
	require.Error(t, err)

	view, err := service.GetArtist(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.PendingLogistics)
	assert.Len(t, view.Logistics.Hotels, 1)
	assert.Len(t, view.Logistics.Rider, 1)
}

func TestSetArtistRecordStatus(t *testing.T) {
	service := newTestService()

	artist, err := service.CreateArtist(&ArtistRequest{Name: "La Banda"})
	require.NoError(t, err)

	hotel, err := service.AddArtistRecord(artist.ID, domain.LogisticsKindHotel, &RecordRequest{
		Description: "Hotel Plaza",
	})
	require.NoError(t, err)

	updated, err := service.SetArtistRecordStatus(artist.ID, hotel.ID, domain.LogisticsKindHotel, string(domain.BookingStatusConfirmado))
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusConfirmado), updated.Status)

	_, err = service.SetArtistRecordStatus(artist.ID, hotel.ID, domain.LogisticsKindHotel, "completado")
	require.Error(t, err)

	// O registro pertence à coleção de hotéis, não à de voos
	_, err = service.SetArtistRecordStatus(artist.ID, hotel.ID, domain.LogisticsKindFlight, string(domain.BookingStatusReservado))
	assert.ErrorIs(t, err, ErrRecordNotFound)

	view, err := service.GetArtist(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.PendingLogistics)
}

func TestProviderLifecycle(t *testing.T) {
	service := newTestService()

	provider, err := service.CreateProvider(&ProviderRequest{
		Name:    "Sonido Total",
		Service: "sonorización",
		Contact: "Jorge",
	})
	require.NoError(t, err)

	_, err = service.AddProviderRecord(provider.ID, domain.LogisticsKindTransport, &RecordRequest{
		Description: "Camión de equipos",
	})
	require.NoError(t, err)

	view, err := service.GetProvider(provider.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.PendingLogistics)

	require.NoError(t, service.DeleteProvider(provider.ID))
	_, err = service.GetProvider(provider.ID)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestPendingSummary(t *testing.T) {
	service := newTestService()

	artist, err := service.CreateArtist(&ArtistRequest{Name: "La Banda"})
	require.NoError(t, err)
	provider, err := service.CreateProvider(&ProviderRequest{Name: "Sonido Total"})
	require.NoError(t, err)

	_, err = service.AddArtistRecord(artist.ID, domain.LogisticsKindHotel, &RecordRequest{Description: "Hotel"})
	require.NoError(t, err)
	_, err = service.AddArtistRecord(artist.ID, domain.LogisticsKindRider, &RecordRequest{Description: "Backline"})
	require.NoError(t, err)

	confirmed, err := service.AddProviderRecord(provider.ID, domain.LogisticsKindTransport, &RecordRequest{Description: "Camión"})
	require.NoError(t, err)
	_, err = service.SetProviderRecordStatus(provider.ID, confirmed.ID, domain.LogisticsKindTransport, string(domain.BookingStatusConfirmado))
	require.NoError(t, err)

	summary := service.PendingSummary()
	assert.Equal(t, 2, summary.ArtistsPending)
	assert.Equal(t, 0, summary.ProvidersPending)
	assert.Equal(t, 2, summary.Total)
}
