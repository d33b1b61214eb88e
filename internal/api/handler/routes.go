package handler

import (
	"net/http"

	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/api/handler/router"
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

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sponsors(service sponsoring.SponsorService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sponsors",
			Method:      http.MethodGet,
			Handler:     ListSponsors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsors",
			Method:      http.MethodPost,
			Handler:     CreateSponsor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id",
			Method:      http.MethodGet,
			Handler:     GetSponsor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsors/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSponsor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSponsor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sponsors/:id/compliance",
			Method:      http.MethodGet,
			Handler:     GetSponsorCompliance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsors/:id/segmentation",
			Method:      http.MethodPut,
			Handler:     SetSponsorSegmentation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/agreements",
			Method:      http.MethodPost,
			Handler:     AddSponsorAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/agreements/:agreement_id",
			Method:      http.MethodPut,
			Handler:     UpdateSponsorAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/agreements/:agreement_id",
			Method:      http.MethodDelete,
			Handler:     DeleteSponsorAgreement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/deliverables",
			Method:      http.MethodPost,
			Handler:     AddSponsorDeliverable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/deliverables/:deliverable_id",
			Method:      http.MethodPut,
			Handler:     UpdateSponsorDeliverable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/deliverables/:deliverable_id/status",
			Method:      http.MethodPatch,
			Handler:     SetSponsorDeliverableStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/deliverables/:deliverable_id/cycle",
			Method:      http.MethodPost,
			Handler:     CycleSponsorDeliverableStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/deliverables/:deliverable_id",
			Method:      http.MethodDelete,
			Handler:     DeleteSponsorDeliverable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/activations",
			Method:      http.MethodPost,
			Handler:     AddSponsorActivation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/activations/:activation_id",
			Method:      http.MethodPut,
			Handler:     UpdateSponsorActivation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/activations/:activation_id",
			Method:      http.MethodDelete,
			Handler:     DeleteSponsorActivation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/publications",
			Method:      http.MethodPost,
			Handler:     AddSponsorPublication(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/publications/:publication_id",
			Method:      http.MethodPut,
			Handler:     UpdateSponsorPublication(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sponsors/:id/publications/:publication_id",
			Method:      http.MethodDelete,
			Handler:     DeleteSponsorPublication(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Influencers(service influencing.InfluencerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers",
			Method:      http.MethodGet,
			Handler:     ListInfluencers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers",
			Method:      http.MethodPost,
			Handler:     CreateInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodGet,
			Handler:     GetInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/influencers/:id/compliance",
			Method:      http.MethodGet,
			Handler:     GetInfluencerCompliance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns",
			Method:      http.MethodPost,
			Handler:     AddInfluencerCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id",
			Method:      http.MethodPut,
			Handler:     UpdateInfluencerCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id",
			Method:      http.MethodDelete,
			Handler:     DeleteInfluencerCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id/items/:kind",
			Method:      http.MethodPost,
			Handler:     AddCampaignItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id/items/:kind/:item_id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaignItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id/items/:kind/:item_id/status",
			Method:      http.MethodPatch,
			Handler:     SetCampaignItemStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id/campaigns/:campaign_id/items/:kind/:item_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaignItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Logistics(service logistics.LogisticsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/logistics/pending",
			Method:      http.MethodGet,
			Handler:     GetLogisticsPendingSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/artists",
			Method:      http.MethodGet,
			Handler:     ListArtists(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/artists",
			Method:      http.MethodPost,
			Handler:     CreateArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodGet,
			Handler:     GetArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodPut,
			Handler:     UpdateArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/artists/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteArtist(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/artists/:id/records/:kind",
			Method:      http.MethodPost,
			Handler:     AddArtistRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/artists/:id/records/:kind/:record_id",
			Method:      http.MethodPut,
			Handler:     UpdateArtistRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/artists/:id/records/:kind/:record_id/status",
			Method:      http.MethodPatch,
			Handler:     SetArtistRecordStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/artists/:id/records/:kind/:record_id",
			Method:      http.MethodDelete,
			Handler:     DeleteArtistRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers",
			Method:      http.MethodGet,
			Handler:     ListProviders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/providers",
			Method:      http.MethodPost,
			Handler:     CreateProvider(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers/:id",
			Method:      http.MethodGet,
			Handler:     GetProvider(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/providers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProvider(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProvider(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/providers/:id/records/:kind",
			Method:      http.MethodPost,
			Handler:     AddProviderRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers/:id/records/:kind/:record_id",
			Method:      http.MethodPut,
			Handler:     UpdateProviderRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers/:id/records/:kind/:record_id/status",
			Method:      http.MethodPatch,
			Handler:     SetProviderRecordStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/providers/:id/records/:kind/:record_id",
			Method:      http.MethodDelete,
			Handler:     DeleteProviderRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Notes(service annotating.NoteService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notes",
			Method:      http.MethodGet,
			Handler:     ListNotes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notes",
			Method:      http.MethodPost,
			Handler:     CreateNote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Events(service eventing.EventService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     ListEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodPost,
			Handler:     CreateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodGet,
			Handler:     GetEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/tickets/imports",
			Method:      http.MethodPost,
			Handler:     ImportTickets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/events/:id/tickets/imports",
			Method:      http.MethodGet,
			Handler:     ListTicketImports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/tickets/stats",
			Method:      http.MethodGet,
			Handler:     GetTicketStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecasts(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/:id/forecast",
			Method:      http.MethodGet,
			Handler:     GetSalesForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/forecast/daily",
			Method:      http.MethodGet,
			Handler:     GetSalesDailySeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Team(service teaming.TeamService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/team/members",
			Method:      http.MethodGet,
			Handler:     ListTeamMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/team/members",
			Method:      http.MethodPost,
			Handler:     InviteTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/team/members/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/team/roles",
			Method:      http.MethodGet,
			Handler:     ListFestivalRoles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Recommendations(service recommending.RecommendationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/:id/recommendations",
			Method:      http.MethodGet,
			Handler:     ListEventRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/recommendations/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshEventRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/recommendations/:id/status",
			Method:      http.MethodPatch,
			Handler:     SetRecommendationStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/recommendations/status",
			Method:      http.MethodGet,
			Handler:     GetRecommendationStatusMap(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Compliance(repo repository.ComplianceSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/compliance/snapshots",
			Method:      http.MethodGet,
			Handler:     ListComplianceSnapshots(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/password",
			Method:      http.MethodPut,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/password/generate",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
