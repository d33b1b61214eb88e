package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend"
	"github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend/recommendclient"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/api"
	"github.com/vfg2006/festival-manager-api/internal/config"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/scheduler"
	"github.com/vfg2006/festival-manager-api/internal/seed"
	"github.com/vfg2006/festival-manager-api/internal/usecases/annotating"
	"github.com/vfg2006/festival-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/festival-manager-api/internal/usecases/eventing"
	"github.com/vfg2006/festival-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/festival-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/festival-manager-api/internal/usecases/logistics"
	"github.com/vfg2006/festival-manager-api/internal/usecases/recommending"
	"github.com/vfg2006/festival-manager-api/internal/usecases/sponsoring"
	"github.com/vfg2006/festival-manager-api/internal/usecases/teaming"
	"github.com/vfg2006/festival-manager-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Repositórios Postgres
	userRepo := repository.NewUserRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	ticketRepo := repository.NewTicketRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	snapshotRepo := repository.NewComplianceSnapshotRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)

	// Stores em memória do estado operacional. Em modo demo já sobem
	// populados com o cenário de demonstração.
	sponsorStore := inmemory.NewSponsorStore(demoSponsors(cfg))
	influencerStore := inmemory.NewInfluencerStore(demoInfluencers(cfg))
	artistStore := inmemory.NewArtistStore(demoArtists(cfg))
	providerStore := inmemory.NewProviderStore(demoProviders(cfg))
	noteStore := inmemory.NewNoteStore(demoNotes(cfg))

	authenticator := authenticating.NewService(userRepo, cfg)

	recommendClient := recommendclient.NewClient(cfg)
	recommendIntegrator := recommend.New(cfg, recommendClient)

	services := api.Services{
		Sponsors:       sponsoring.NewService(sponsorStore, nil),
		Influencers:    influencing.NewService(influencerStore, nil),
		Logistics:      logistics.NewService(artistStore, providerStore, nil),
		Notes:          annotating.NewService(noteStore, nil),
		Events:         eventing.NewService(eventRepo, ticketRepo, nil),
		Forecasts:      forecasting.NewService(eventRepo, ticketRepo),
		Team:           teaming.NewService(teamRepo, nil),
		Recommendation: recommending.NewService(recommendIntegrator, recommendationRepo),
		Authenticator:  authenticator,

		ComplianceSnapshots: snapshotRepo,
	}

	// Agendadores de sincronização em background
	complianceSync := scheduler.NewComplianceSnapshotSyncService(
		sponsorStore,
		influencerStore,
		snapshotRepo,
		cfg,
	)

	recommendationSync := scheduler.NewRecommendationSyncService(
		eventRepo,
		recommendationRepo,
		recommendIntegrator,
		cfg,
	)

	if err := complianceSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de compliance")
	} else {
		logrus.Info("Agendador de snapshots de compliance iniciado com sucesso")
	}

	if err := recommendationSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomendações")
	} else {
		logrus.Info("Agendador de recomendações iniciado com sucesso")
	}

	services.ComplianceSnapshotSync = complianceSync
	services.RecommendationSync = recommendationSync

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func demoSponsors(cfg *config.Config) []*domain.Sponsor {
	if !cfg.Demo.Enabled {
		return nil
	}
	return seed.Sponsors()
}

func demoInfluencers(cfg *config.Config) []*domain.Influencer {
	if !cfg.Demo.Enabled {
		return nil
	}
	return seed.Influencers()
}

func demoArtists(cfg *config.Config) []*domain.Artist {
	if !cfg.Demo.Enabled {
		return nil
	}
	return seed.Artists()
}

func demoProviders(cfg *config.Config) []*domain.Provider {
	if !cfg.Demo.Enabled {
		return nil
	}
	return seed.Providers()
}

func demoNotes(cfg *config.Config) []*domain.Note {
	if !cfg.Demo.Enabled {
		return nil
	}
	return seed.Notes()
}
