package recommending

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	recommendmocks "github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend/mocks"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestListByEventUsesPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := recommendmocks.NewMockRecommendIntegrator(ctrl)
	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockIntegrator, mockRepo)

	persisted := []*domain.Recommendation{
		{ID: "rec-1", EventID: "ev-1", Title: "Subir pauta de redes", Status: domain.RecommendationStatusPendiente},
	}

	// Já há recomendações gravadas: o serviço externo não é consultado
	mockRepo.EXPECT().ListByEventID("ev-1").Return(persisted, nil)

	recommendations, err := service.ListByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, persisted, recommendations)
}

func TestListByEventFetchesWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := recommendmocks.NewMockRecommendIntegrator(ctrl)
	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockIntegrator, mockRepo)

	fetched := []*domain.Recommendation{
		{ID: "rec-1", EventID: "ev-1", Title: "Patrocinio local", Status: domain.RecommendationStatusPendiente},
		{ID: "rec-2", EventID: "ev-1", Title: "Early bird extendido", Status: domain.RecommendationStatusPendiente},
	}

	gomock.InOrder(
		mockRepo.EXPECT().ListByEventID("ev-1").Return(nil, nil),
		mockIntegrator.EXPECT().GetRecommendationsByEvent(gomock.Any(), "ev-1").Return(fetched, nil),
		mockRepo.EXPECT().SaveOrUpdate(fetched).Return(nil),
		mockRepo.EXPECT().ListByEventID("ev-1").Return(fetched, nil),
	)

	recommendations, err := service.ListByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Len(t, recommendations, 2)
}

func TestListByEventFallsBackToEmptyOnIntegratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := recommendmocks.NewMockRecommendIntegrator(ctrl)
	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockIntegrator, mockRepo)

	// Sem cache e com o serviço externo fora do ar, a listagem
	// responde vazia em vez de propagar o erro
	mockRepo.EXPECT().ListByEventID("ev-1").Return(nil, nil)
	mockIntegrator.EXPECT().
		GetRecommendationsByEvent(gomock.Any(), "ev-1").
		Return(nil, errors.New("serviço externo indisponível"))

	recommendations, err := service.ListByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	require.NotNil(t, recommendations)
	assert.Empty(t, recommendations)
}

func TestRefreshPropagatesIntegratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := recommendmocks.NewMockRecommendIntegrator(ctrl)
	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockIntegrator, mockRepo)

	integratorErr := errors.New("serviço indisponível")
	mockIntegrator.EXPECT().
		GetRecommendationsByEvent(gomock.Any(), "ev-1").
		Return(nil, integratorErr)

	_, err := service.Refresh(context.Background(), "ev-1")
	assert.ErrorIs(t, err, integratorErr)
}

func TestSetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(recommendmocks.NewMockRecommendIntegrator(ctrl), mockRepo)

	mockRepo.EXPECT().
		UpdateStatus("rec-1", domain.RecommendationStatusAplicada).
		Return(nil)

	require.NoError(t, service.SetStatus("rec-1", "aplicada"))

	err := service.SetStatus("rec-1", "archivada")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	mockRepo.EXPECT().
		UpdateStatus("rec-x", domain.RecommendationStatusDescartada).
		Return(errors.New("sql: no rows in result set"))

	err = service.SetStatus("rec-x", "descartada")
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestStatusMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(recommendmocks.NewMockRecommendIntegrator(ctrl), mockRepo)

	mockRepo.EXPECT().StatusMap().Return(map[string]domain.RecommendationStatus{
		"rec-1": domain.RecommendationStatusAplicada,
		"rec-2": domain.RecommendationStatusPendiente,
	}, nil)

	statuses, err := service.StatusMap()
	require.NoError(t, err)
	assert.Len(t, statuses, 2)
	assert.Equal(t, domain.RecommendationStatusAplicada, statuses["rec-1"])
}
