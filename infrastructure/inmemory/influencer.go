package inmemory

import (
	"sync"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

type InfluencerStore interface {
	List(filters domain.InfluencerFilters) []*domain.Influencer
	Get(id string) *domain.Influencer
	Create(influencer *domain.Influencer)
	Update(influencer *domain.Influencer) bool
	Delete(id string) bool
}

type influencerStore struct {
	mu          sync.RWMutex
	influencers []*domain.Influencer
}

func NewInfluencerStore(seed []*domain.Influencer) InfluencerStore {
	store := &influencerStore{
		influencers: make([]*domain.Influencer, 0, len(seed)),
	}

	for _, i := range seed {
		store.influencers = append(store.influencers, i.Clone())
	}

	return store
}

func (st *influencerStore) List(filters domain.InfluencerFilters) []*domain.Influencer {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]*domain.Influencer, 0, len(st.influencers))
	for _, i := range st.influencers {
		if filters.Match(i) {
			result = append(result, i.Clone())
		}
	}

	return result
}

func (st *influencerStore) Get(id string) *domain.Influencer {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, i := range st.influencers {
		if i.ID == id {
			return i.Clone()
		}
	}

	return nil
}

func (st *influencerStore) Create(influencer *domain.Influencer) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.influencers = append([]*domain.Influencer{influencer.Clone()}, st.influencers...)
}

func (st *influencerStore) Update(influencer *domain.Influencer) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, existing := range st.influencers {
		if existing.ID == influencer.ID {
			st.influencers[i] = influencer.Clone()
			return true
		}
	}

	return false
}

func (st *influencerStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	remaining := st.influencers[:0]
	deleted := false

	for _, i := range st.influencers {
		if i.ID == id {
			deleted = true
			continue
		}
		remaining = append(remaining, i)
	}

	st.influencers = remaining
	return deleted
}
