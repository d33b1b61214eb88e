package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newSnapshotService(sponsors []*domain.Sponsor, influencers []*domain.Influencer, repo repository.ComplianceSnapshotRepository) *ComplianceSnapshotSyncService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("snap-%d", counter)
	}

	return &ComplianceSnapshotSyncService{
		sponsors:     inmemory.NewSponsorStore(sponsors),
		influencers:  inmemory.NewInfluencerStore(influencers),
		snapshotRepo: repo,
		ids:          ids,
		config: ComplianceSnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
	}
}

func TestSyncAllSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sponsors := []*domain.Sponsor{
		{
			ID:   "sp-1",
			Name: "Red Bull",
			Agreements: []*domain.Agreement{
				{ID: "ag-1", Status: domain.AgreementStatusFirmado},
			},
			Deliverables: []*domain.Deliverable{
				{ID: "d-1", Status: domain.DeliverableStatusEntregado},
				{ID: "d-2", Status: domain.DeliverableStatusPendiente},
			},
		},
	}

	influencers := []*domain.Influencer{
		{
			ID:   "in-1",
			Name: "Sofía Rivas",
			Campaigns: []*domain.Campaign{
				{
					ID: "c-1",
					PostDeliverables: []*domain.CampaignItem{
						{ID: "i-1", Status: domain.CampaignItemStatusCompletado},
					},
				},
			},
		},
	}

	mockRepo := mocks.NewMockComplianceSnapshotRepository(ctrl)
	service := newSnapshotService(sponsors, influencers, mockRepo)

	mockRepo.EXPECT().
		SaveSnapshots(gomock.Any()).
		DoAndReturn(func(snapshots []*repository.ComplianceSnapshot) error {
			require.Len(t, snapshots, 2)

			assert.Equal(t, "sponsor", snapshots[0].EntityType)
			assert.Equal(t, "sp-1", snapshots[0].EntityID)
			assert.Equal(t, "Red Bull", snapshots[0].EntityName)
			assert.Equal(t, 50, snapshots[0].Percent)
			assert.Equal(t, domain.HealthWarning, snapshots[0].Health)
			assert.False(t, snapshots[0].TakenAt.IsZero())

			assert.Equal(t, "influencer", snapshots[1].EntityType)
			assert.Equal(t, "in-1", snapshots[1].EntityID)
			assert.Equal(t, 100, snapshots[1].Percent)
			assert.Equal(t, domain.HealthOK, snapshots[1].Health)
			return nil
		})

	service.syncAllSnapshots()

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestSyncAllSnapshotsWithoutEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem sponsors nem influencers, nada chega ao repositório
	mockRepo := mocks.NewMockComplianceSnapshotRepository(ctrl)
	service := newSnapshotService(nil, nil, mockRepo)

	service.syncAllSnapshots()
}
