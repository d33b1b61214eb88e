package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/api/handler"
	"github.com/vfg2006/festival-manager-api/internal/api/handler/router"
	"github.com/vfg2006/festival-manager-api/internal/config"
	"github.com/vfg2006/festival-manager-api/internal/scheduler"
	"github.com/vfg2006/festival-manager-api/internal/usecases/annotating"
	"github.com/vfg2006/festival-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/festival-manager-api/internal/usecases/eventing"
	"github.com/vfg2006/festival-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/festival-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/festival-manager-api/internal/usecases/logistics"
	"github.com/vfg2006/festival-manager-api/internal/usecases/recommending"
	"github.com/vfg2006/festival-manager-api/internal/usecases/sponsoring"
	"github.com/vfg2006/festival-manager-api/internal/usecases/teaming"
	"github.com/vfg2006/festival-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Sponsors       sponsoring.SponsorService
	Influencers    influencing.InfluencerService
	Logistics      logistics.LogisticsService
	Notes          annotating.NoteService
	Events         eventing.EventService
	Forecasts      forecasting.ForecastService
	Team           teaming.TeamService
	Recommendation recommending.RecommendationService
	Authenticator  authenticating.Authenticator

	ComplianceSnapshots repository.ComplianceSnapshotRepository

	ComplianceSnapshotSync *scheduler.ComplianceSnapshotSyncService
	RecommendationSync     *scheduler.RecommendationSyncService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		ComplianceSnapshotSyncService: services.ComplianceSnapshotSync,
		RecommendationSyncService:     services.RecommendationSync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Users(services.Authenticator)...),
		router.WithRoutes(handler.Sponsors(services.Sponsors)...),
		router.WithRoutes(handler.Influencers(services.Influencers)...),
		router.WithRoutes(handler.Logistics(services.Logistics)...),
		router.WithRoutes(handler.Notes(services.Notes)...),
		router.WithRoutes(handler.Events(services.Events)...),
		router.WithRoutes(handler.Forecasts(services.Forecasts)...),
		router.WithRoutes(handler.Team(services.Team)...),
		router.WithRoutes(handler.Recommendations(services.Recommendation)...),
		router.WithRoutes(handler.Compliance(services.ComplianceSnapshots)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
