// Package seed contém os dados estáticos usados quando o modo demo está
// habilitado: os stores em memória são populados a partir destes arrays
// em vez de começarem vazios.
package seed

import (
	"time"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

var baseTime = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

// Sponsors devolve os sponsors de demonstração
func Sponsors() []*domain.Sponsor {
	return []*domain.Sponsor{
		{
			ID:                  "spn-demo-001",
			Name:                "Red Bull",
			Category:            "Bebidas energéticas",
			Status:              domain.SponsorStatusEnCurso,
			AgreementType:       "económico",
			InternalResponsible: "Lucía Fernández",
			Notes:               "Interesados en activación en la zona VIP",
			CreatedAt:           baseTime,
			UpdatedAt:           baseTime,
			Agreements: []*domain.Agreement{
				{
					ID:          "agr-demo-001",
					Description: "Patrocinio escenario principal",
					Type:        "económico",
					Amount:      50000,
					StartDate:   datePtr(2026, time.March, 1),
					EndDate:     datePtr(2026, time.July, 31),
					Status:      domain.AgreementStatusFirmado,
					CreatedAt:   baseTime,
					UpdatedAt:   baseTime,
				},
			},
			Deliverables: []*domain.Deliverable{
				{
					ID:          "del-demo-001",
					Description: "Logo en cartelería oficial",
					Responsible: "Equipo diseño",
					Status:      domain.DeliverableStatusEntregado,
					CreatedAt:   baseTime,
					UpdatedAt:   baseTime,
				},
				{
					ID:          "del-demo-002",
					Description: "Mención en redes sociales",
					DueDate:     datePtr(2026, time.June, 15),
					Responsible: "Community manager",
					Status:      domain.DeliverableStatusPendiente,
					CreatedAt:   baseTime,
					UpdatedAt:   baseTime,
				},
			},
			Activations: []*domain.Activation{
				{
					ID:          "act-demo-001",
					Name:        "Stand de sampling",
					Description: "Reparto de producto en la entrada norte",
					Location:    "Entrada norte",
					Date:        datePtr(2026, time.July, 18),
					Status:      domain.ActivationStatusConfirmada,
					CreatedAt:   baseTime,
					UpdatedAt:   baseTime,
				},
			},
			Publications: []*domain.Publication{
				{
					ID:          "pub-demo-001",
					Title:       "Anuncio de patrocinio",
					Channel:     "Instagram",
					ScheduledAt: datePtr(2026, time.May, 10),
					Status:      domain.PublicationStatusProgramada,
					CreatedAt:   baseTime,
					UpdatedAt:   baseTime,
				},
			},
		},
		{
			ID:                  "spn-demo-002",
			Name:                "Cervezas del Sur",
			Category:            "Bebidas",
			Status:              domain.SponsorStatusPendiente,
			AgreementType:       "especie",
			InternalResponsible: "Marcos Gil",
			CreatedAt:           baseTime.Add(-24 * time.Hour),
			UpdatedAt:           baseTime.Add(-24 * time.Hour),
			Agreements: []*domain.Agreement{
				{
					ID:          "agr-demo-002",
					Description: "Suministro de barras",
					Type:        "especie",
					Amount:      20000,
					Status:      domain.AgreementStatusPropuesto,
					CreatedAt:   baseTime.Add(-24 * time.Hour),
					UpdatedAt:   baseTime.Add(-24 * time.Hour),
				},
			},
		},
	}
}

// Influencers devolve os influencers de demonstração
func Influencers() []*domain.Influencer {
	return []*domain.Influencer{
		{
			ID:        "inf-demo-001",
			Name:      "Carla Ruiz",
			Handle:    "@carlaruiz",
			Email:     "carla@example.com",
			Platform:  "Instagram",
			Category:  "Lifestyle",
			Followers: 120000,
			Status:    domain.InfluencerStatusActivo,
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
			Campaigns: []*domain.Campaign{
				{
					ID:        "cmp-demo-001",
					Name:      "Cuenta atrás del festival",
					StartDate: datePtr(2026, time.May, 1),
					EndDate:   datePtr(2026, time.July, 17),
					Budget:    8000,
					CreatedAt: baseTime,
					UpdatedAt: baseTime,
					PostDeliverables: []*domain.CampaignItem{
						{
							ID:          "pst-demo-001",
							Description: "Reel anuncio line-up",
							Status:      domain.CampaignItemStatusCompletado,
							CreatedAt:   baseTime,
							UpdatedAt:   baseTime,
						},
						{
							ID:          "pst-demo-002",
							Description: "Stories sorteo de entradas",
							DueDate:     datePtr(2026, time.June, 20),
							Status:      domain.CampaignItemStatusPendiente,
							CreatedAt:   baseTime,
							UpdatedAt:   baseTime,
						},
					},
					AdminDeliverables: []*domain.CampaignItem{
						{
							ID:          "adm-demo-001",
							Description: "Contrato firmado",
							Status:      domain.CampaignItemStatusCompletado,
							CreatedAt:   baseTime,
							UpdatedAt:   baseTime,
						},
					},
				},
			},
		},
		{
			ID:        "inf-demo-002",
			Name:      "DJ Mateo",
			Handle:    "@djmateo",
			Platform:  "TikTok",
			Category:  "Música",
			Followers: 45000,
			Status:    domain.InfluencerStatusPendiente,
			CreatedAt: baseTime.Add(-48 * time.Hour),
			UpdatedAt: baseTime.Add(-48 * time.Hour),
		},
	}
}

// Artists devolve os artistas de demonstração
func Artists() []*domain.Artist {
	return []*domain.Artist{
		{
			ID:       "art-demo-001",
			Name:     "Los Venturas",
			Genre:    "Indie rock",
			Stage:    "Principal",
			ShowDate: datePtr(2026, time.July, 18),
			Fee:      35000,
			Status:   domain.ArtistStatusConfirmado,
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
			Logistics: domain.Logistics{
				Hotels: []*domain.LogisticsRecord{
					{
						ID:          "lgh-demo-001",
						Kind:        domain.LogisticsKindHotel,
						Description: "Hotel Miramar, 4 habitaciones",
						Date:        datePtr(2026, time.July, 17),
						Status:      string(domain.BookingStatusReservado),
						CreatedAt:   baseTime,
						UpdatedAt:   baseTime,
					},
				},
				Flights: []*domain.LogisticsRecord{
					{
						ID:          "lgf-demo-001",
						Kind:        domain.LogisticsKindFlight,
						Description: "MAD → festival, 5 plazas",
						Date:        datePtr(2026, time.July, 17),
						Reference:   "IB1234",
						Status:      string(domain.BookingStatusConfirmado),
						CreatedAt:   baseTime,
						UpdatedAt:   baseTime,
					},
				},
				Rider: []*domain.LogisticsRecord{
					{
						ID:          "lgr-demo-001",
						Kind:        domain.LogisticsKindRider,
						Description: "Backline batería",
						Status:      string(domain.ChecklistItemStatusPendiente),
						CreatedAt:   baseTime,
						UpdatedAt:   baseTime,
					},
				},
			},
		},
	}
}

// Providers devolve os fornecedores de demonstração
func Providers() []*domain.Provider {
	return []*domain.Provider{
		{
			ID:      "prv-demo-001",
			Name:    "Sonido Global",
			Service: "Sonido e iluminación",
			Contact: "Pedro Aced",
			Phone:   "+34 600 111 222",
			Status:  domain.ProviderStatusActivo,
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
			Logistics: domain.Logistics{
				Transports: []*domain.LogisticsRecord{
					{
						ID:          "lgt-demo-001",
						Kind:        domain.LogisticsKindTransport,
						Description: "Camión de equipo, montaje",
						Date:        datePtr(2026, time.July, 16),
						Status:      string(domain.BookingStatusPendiente),
						CreatedAt:   baseTime,
						UpdatedAt:   baseTime,
					},
				},
			},
		},
	}
}

// Notes devolve as notas de demonstração, incluindo uma nota wildcard
// visível para todos os artistas
func Notes() []*domain.Note {
	return []*domain.Note{
		{
			ID:         "not-demo-001",
			EntityType: domain.NoteEntitySponsor,
			EntityID:   "spn-demo-001",
			Content:    "Confirmar medidas del stand antes del 1 de junio",
			Author:     "Lucía Fernández",
			Priority:   domain.NotePriorityHigh,
			CreatedAt:  baseTime,
		},
		{
			ID:         "not-demo-002",
			EntityType: domain.NoteEntityArtist,
			EntityID:   domain.NoteEntityAll,
			Content:    "Recordad enviar acreditaciones a todos los managers",
			Author:     "Producción",
			Priority:   domain.NotePriorityMedium,
			CreatedAt:  baseTime.Add(-2 * time.Hour),
		},
	}
}
