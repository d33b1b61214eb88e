package inmemory

import (
	"sync"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

type ArtistStore interface {
	List(filters domain.ArtistFilters) []*domain.Artist
	Get(id string) *domain.Artist
	Create(artist *domain.Artist)
	Update(artist *domain.Artist) bool
	Delete(id string) bool
}

type ProviderStore interface {
	List(filters domain.ProviderFilters) []*domain.Provider
	Get(id string) *domain.Provider
	Create(provider *domain.Provider)
	Update(provider *domain.Provider) bool
	Delete(id string) bool
}

type artistStore struct {
	mu      sync.RWMutex
	artists []*domain.Artist
}

func NewArtistStore(seed []*domain.Artist) ArtistStore {
	store := &artistStore{
		artists: make([]*domain.Artist, 0, len(seed)),
	}

	for _, a := range seed {
		store.artists = append(store.artists, a.Clone())
	}

	return store
}

func (st *artistStore) List(filters domain.ArtistFilters) []*domain.Artist {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]*domain.Artist, 0, len(st.artists))
	for _, a := range st.artists {
		if filters.Match(a) {
			result = append(result, a.Clone())
		}
	}

	return result
}

func (st *artistStore) Get(id string) *domain.Artist {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, a := range st.artists {
		if a.ID == id {
			return a.Clone()
		}
	}

	return nil
}

func (st *artistStore) Create(artist *domain.Artist) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.artists = append([]*domain.Artist{artist.Clone()}, st.artists...)
}

func (st *artistStore) Update(artist *domain.Artist) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, a := range st.artists {
		if a.ID == artist.ID {
			st.artists[i] = artist.Clone()
			return true
		}
	}

	return false
}

func (st *artistStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	remaining := st.artists[:0]
	deleted := false

	for _, a := range st.artists {
		if a.ID == id {
			deleted = true
			continue
		}
		remaining = append(remaining, a)
	}

	st.artists = remaining
	return deleted
}

type providerStore struct {
	mu        sync.RWMutex
	providers []*domain.Provider
}

func NewProviderStore(seed []*domain.Provider) ProviderStore {
	store := &providerStore{
		providers: make([]*domain.Provider, 0, len(seed)),
	}

	for _, p := range seed {
		store.providers = append(store.providers, p.Clone())
	}

	return store
}

func (st *providerStore) List(filters domain.ProviderFilters) []*domain.Provider {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]*domain.Provider, 0, len(st.providers))
	for _, p := range st.providers {
		if filters.Match(p) {
			result = append(result, p.Clone())
		}
	}

	return result
}

func (st *providerStore) Get(id string) *domain.Provider {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, p := range st.providers {
		if p.ID == id {
			return p.Clone()
		}
	}

	return nil
}

func (st *providerStore) Create(provider *domain.Provider) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.providers = append([]*domain.Provider{provider.Clone()}, st.providers...)
}

func (st *providerStore) Update(provider *domain.Provider) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, p := range st.providers {
		if p.ID == provider.ID {
			st.providers[i] = provider.Clone()
			return true
		}
	}

	return false
}

func (st *providerStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	remaining := st.providers[:0]
	deleted := false

	for _, p := range st.providers {
		if p.ID == id {
			deleted = true
			continue
		}
		remaining = append(remaining, p)
	}

	st.providers = remaining
	return deleted
}
