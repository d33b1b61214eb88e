package inmemory

import (
	"sync"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

type NoteStore interface {
	List(filters domain.NoteFilters) []*domain.Note
	Create(note *domain.Note)
}

type noteStore struct {
	mu    sync.RWMutex
	notes []*domain.Note
}

func NewNoteStore(seed []*domain.Note) NoteStore {
	store := &noteStore{
		notes: make([]*domain.Note, 0, len(seed)),
	}

	for _, n := range seed {
		copied := *n
		store.notes = append(store.notes, &copied)
	}

	return store
}

// List devolve as notas que casam com os filtros, mais recente primeiro
func (st *noteStore) List(filters domain.NoteFilters) []*domain.Note {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]*domain.Note, 0, len(st.notes))
	for _, n := range st.notes {
		if filters.Match(n) {
			copied := *n
			result = append(result, &copied)
		}
	}

	return result
}

// Create insere a nota no início. Notas não têm edição nem exclusão.
func (st *noteStore) Create(note *domain.Note) {
	st.mu.Lock()
	defer st.mu.Unlock()

	copied := *note
	st.notes = append([]*domain.Note{&copied}, st.notes...)
}
