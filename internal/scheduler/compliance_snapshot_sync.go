package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/config"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/festival-manager-api/internal/usecases/sponsoring"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

// ComplianceSnapshotSyncConfig representa a configuração do agendador de
// snapshots de compliance
type ComplianceSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ComplianceSnapshotSyncService fotografa periodicamente o compliance de
// sponsors e influencers e grava o histórico no banco
type ComplianceSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ComplianceSnapshotSyncConfig
	sponsors            inmemory.SponsorStore
	influencers         inmemory.InfluencerStore
	snapshotRepo        repository.ComplianceSnapshotRepository
	ids                 utils.IDGenerator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewComplianceSnapshotSyncService(
	sponsors inmemory.SponsorStore,
	influencers inmemory.InfluencerStore,
	snapshotRepo repository.ComplianceSnapshotRepository,
	appConfig *config.Config,
) *ComplianceSnapshotSyncService {
	syncConfig := ComplianceSnapshotSyncConfig{
		CronSchedule: appConfig.ComplianceSync.CronSchedule,
		SyncEnabled:  appConfig.ComplianceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de compliance carregada")

	return &ComplianceSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		sponsors:     sponsors,
		influencers:  influencers,
		snapshotRepo: snapshotRepo,
		ids:          utils.GenerateID,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ComplianceSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshots de compliance desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de compliance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de compliance: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de compliance")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots calcula o compliance corrente de todos os sponsors e
// influencers e grava um snapshot por entidade
func (s *ComplianceSnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de compliance já em andamento, ignorando")
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

	logrus.Info("Iniciando snapshot de compliance de sponsors e influencers")

	snapshots := s.buildSnapshots(startTime)
	if len(snapshots) == 0 {
		logrus.Info("Nenhuma entidade encontrada para snapshot de compliance")
		return
	}

	if err := s.snapshotRepo.SaveSnapshots(snapshots); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshots de compliance no banco de dados")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"snapshots": len(snapshots),
	}).Info("Snapshot de compliance concluído")

	s.lastSyncCompletedAt = time.Now()
}

func (s *ComplianceSnapshotSyncService) buildSnapshots(takenAt time.Time) []*repository.ComplianceSnapshot {
	snapshots := make([]*repository.ComplianceSnapshot, 0)

	for _, sponsor := range s.sponsors.List(domain.SponsorFilters{}) {
		report := sponsoring.BuildComplianceReport(sponsor)
		snapshots = append(snapshots, s.toSnapshot(report, takenAt))
	}

	for _, influencer := range s.influencers.List(domain.InfluencerFilters{}) {
		report := influencing.BuildComplianceReport(influencer)
		snapshots = append(snapshots, s.toSnapshot(report, takenAt))
	}

	return snapshots
}

func (s *ComplianceSnapshotSyncService) toSnapshot(report *domain.ComplianceReport, takenAt time.Time) *repository.ComplianceSnapshot {
	return &repository.ComplianceSnapshot{
		ID:         s.ids(),
		EntityType: report.EntityType,
		EntityID:   report.EntityID,
		EntityName: report.EntityName,
		Percent:    report.Percent,
		Health:     report.Health,
		TakenAt:    takenAt,
	}
}

// TriggerManualSync inicia manualmente um snapshot de compliance
func (s *ComplianceSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de compliance já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de compliance")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *ComplianceSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
