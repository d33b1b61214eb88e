// Package inmemory implementa os stores de estado de sessão: sponsors,
// influencers, artistas, providers e notas vivem em memória, protegidos
// por mutex, e se perdem no restart — exatamente como o estado de
// componente do painel original. Leituras devolvem snapshots clonados;
// escritas concorrentes resolvem por last-write-wins.
package inmemory

import (
	"sync"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

type SponsorStore interface {
	List(filters domain.SponsorFilters) []*domain.Sponsor
	Get(id string) *domain.Sponsor
	Create(sponsor *domain.Sponsor)
	Update(sponsor *domain.Sponsor) bool
	Delete(id string) bool
}

type sponsorStore struct {
	mu       sync.RWMutex
	sponsors []*domain.Sponsor
}

// NewSponsorStore cria um store de sponsors, opcionalmente populado com
// dados de seed (modo demo)
func NewSponsorStore(seed []*domain.Sponsor) SponsorStore {
	store := &sponsorStore{
		sponsors: make([]*domain.Sponsor, 0, len(seed)),
	}

	for _, s := range seed {
		store.sponsors = append(store.sponsors, s.Clone())
	}

	return store
}

func (st *sponsorStore) List(filters domain.SponsorFilters) []*domain.Sponsor {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]*domain.Sponsor, 0, len(st.sponsors))
	for _, s := range st.sponsors {
		if filters.Match(s) {
			result = append(result, s.Clone())
		}
	}

	return result
}

func (st *sponsorStore) Get(id string) *domain.Sponsor {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, s := range st.sponsors {
		if s.ID == id {
			return s.Clone()
		}
	}

	return nil
}

// Create insere o sponsor no início da lista (mais recente primeiro)
func (st *sponsorStore) Create(sponsor *domain.Sponsor) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sponsors = append([]*domain.Sponsor{sponsor.Clone()}, st.sponsors...)
}

// Update substitui o registro inteiro pela posição do id
func (st *sponsorStore) Update(sponsor *domain.Sponsor) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, s := range st.sponsors {
		if s.ID == sponsor.ID {
			st.sponsors[i] = sponsor.Clone()
			return true
		}
	}

	return false
}

// Delete descarta o sponsor e, com ele, todas as suas sub-coleções
func (st *sponsorStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	remaining := st.sponsors[:0]
	deleted := false

	for _, s := range st.sponsors {
		if s.ID == id {
			deleted = true
			continue
		}
		remaining = append(remaining, s)
	}

	st.sponsors = remaining
	return deleted
}
