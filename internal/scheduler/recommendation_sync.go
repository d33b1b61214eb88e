package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/config"
)

// RecommendationSyncConfig representa a configuração do agendador de
// atualização de recomendações
type RecommendationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RecommendationSyncService atualiza periodicamente as recomendações
// comerciais dos eventos futuros a partir do serviço externo
type RecommendationSyncService struct {
	scheduler           *gocron.Scheduler
	config              RecommendationSyncConfig
	eventRepo           repository.EventRepository
	recommendationRepo  repository.RecommendationRepository
	integrator          recommend.RecommendIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRecommendationSyncService(
	eventRepo repository.EventRepository,
	recommendationRepo repository.RecommendationRepository,
	integrator recommend.RecommendIntegrator,
	appConfig *config.Config,
) *RecommendationSyncService {
	syncConfig := RecommendationSyncConfig{
		CronSchedule: appConfig.RecommendationSync.CronSchedule,
		SyncEnabled:  appConfig.RecommendationSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recomendações carregada")

	return &RecommendationSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		eventRepo:          eventRepo,
		recommendationRepo: recommendationRepo,
		integrator:         integrator,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *RecommendationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de recomendações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de recomendações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllRecommendations()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de recomendações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de recomendações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllRecommendations busca as recomendações de cada evento futuro e
// grava preservando os status já atribuídos pelo operador
func (s *RecommendationSyncService) syncAllRecommendations() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de recomendações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de recomendações dos eventos futuros")

	events, err := s.eventRepo.ListUpcomingEvents()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar eventos para sincronização de recomendações")
		return
	}

	if len(events) == 0 {
		logrus.Info("Nenhum evento futuro encontrado para sincronização de recomendações")
		return
	}

	synced := 0
	for _, event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		recommendations, err := s.integrator.GetRecommendationsByEvent(ctx, event.ID)
		cancel()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"event_id":   event.ID,
				"event_name": event.Name,
				"error":      err.Error(),
			}).Error("Erro ao buscar recomendações do evento")
			continue
		}

		if len(recommendations) == 0 {
			logrus.WithField("event_id", event.ID).Info("Nenhuma recomendação retornada para o evento")
			continue
		}

		if err := s.recommendationRepo.SaveOrUpdate(recommendations); err != nil {
			logrus.WithFields(logrus.Fields{
				"event_id": event.ID,
				"error":    err.Error(),
			}).Error("Erro ao salvar recomendações do evento no banco de dados")
			continue
		}

		synced += len(recommendations)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":        duration.String(),
		"events":          len(events),
		"recommendations": synced,
	}).Info("Sincronização de recomendações concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de recomendações
func (s *RecommendationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de recomendações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de recomendações")
	go s.syncAllRecommendations()
}

// GetStatus retorna o status atual do agendador
func (s *RecommendationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
