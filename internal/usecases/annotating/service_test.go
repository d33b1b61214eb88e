package annotating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

func newTestService() NoteService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(inmemory.NewNoteStore(nil), ids)
}

func TestCreateNoteDefaults(t *testing.T) {
	service := newTestService()

	note, err := service.CreateNote(&NoteRequest{
		EntityType: "sponsor",
		EntityID:   "sp-1",
		Content:    "Confirmar lona del escenario",
		Author:     "Lucía",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", note.ID)
	assert.Equal(t, domain.NotePriorityMedium, note.Priority)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestCreateNoteValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  *NoteRequest
	}{
		{
			name: "sem conteúdo",
			req:  &NoteRequest{EntityType: "task", EntityID: "t-1"},
		},
		{
			name: "sem entidade",
			req:  &NoteRequest{EntityType: "task", Content: "pendiente"},
		},
		{
			name: "tipo de entidade desconhecido",
			req:  &NoteRequest{EntityType: "evento", EntityID: "e-1", Content: "pendiente"},
		},
		{
			name: "prioridade inválida",
			req:  &NoteRequest{EntityType: "artist", EntityID: "a-1", Content: "pendiente", Priority: "urgente"},
		},
	}

	service := newTestService()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateNote(tc.req)
			assert.ErrorIs(t, err, ErrInvalidNote)
		})
	}
}

func TestListNotesWildcard(t *testing.T) {
	service := newTestService()

	_, err := service.CreateNote(&NoteRequest{
		EntityType: "artist",
		EntityID:   "a-1",
		Content:    "Rider pendiente de revisión",
	})
	require.NoError(t, err)

	_, err = service.CreateNote(&NoteRequest{
		EntityType: "artist",
		EntityID:   domain.NoteEntityAll,
		Content:    "Soundcheck general a las 14h",
	})
	require.NoError(t, err)

	_, err = service.CreateNote(&NoteRequest{
		EntityType: "artist",
		EntityID:   "a-2",
		Content:    "Cambio de horario",
	})
	require.NoError(t, err)

	// A nota wildcard aparece na listagem de qualquer artista
	notes := service.ListNotes(domain.NoteFilters{
		EntityType: domain.NoteEntityArtist,
		EntityID:   "a-1",
	})
	require.Len(t, notes, 2)

	// Mais recente primeiro
	assert.Equal(t, "Soundcheck general a las 14h", notes[0].Content)
	assert.Equal(t, "Rider pendiente de revisión", notes[1].Content)

	all := service.ListNotes(domain.NoteFilters{EntityType: domain.NoteEntityArtist})
	assert.Len(t, all, 3)
}
