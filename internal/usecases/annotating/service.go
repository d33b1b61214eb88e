package annotating

import (
	"errors"
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

var ErrInvalidNote = errors.New("dados obrigatórios ausentes ou inválidos")

// NoteService expõe as operações de anotações. Notas só são listadas e
// criadas: editar ou excluir não faz parte do fluxo.
type NoteService interface {
	ListNotes(filters domain.NoteFilters) []*domain.Note
	CreateNote(req *NoteRequest) (*domain.Note, error)
}

type Service struct {
	store inmemory.NoteStore
	ids   utils.IDGenerator
}

func NewService(store inmemory.NoteStore, ids utils.IDGenerator) NoteService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		store: store,
		ids:   ids,
	}
}

type NoteRequest struct {
	EntityType  string     `json:"entity_type"`
	EntityID    string     `json:"entity_id"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Priority    string     `json:"priority"`
	Responsible string     `json:"responsible"`
	ReminderAt  *time.Time `json:"reminder_at,omitempty"`
}

func (r *NoteRequest) validate() error {
	if r.Content == "" || r.EntityID == "" {
		return ErrInvalidNote
	}

	switch domain.NoteEntityType(r.EntityType) {
	case domain.NoteEntityTask, domain.NoteEntityArtist, domain.NoteEntityProvider, domain.NoteEntitySponsor:
	default:
		return ErrInvalidNote
	}

	if r.Priority != "" {
		switch domain.NotePriority(r.Priority) {
		case domain.NotePriorityLow, domain.NotePriorityMedium, domain.NotePriorityHigh:
		default:
			return ErrInvalidNote
		}
	}

	return nil
}

func (s *Service) ListNotes(filters domain.NoteFilters) []*domain.Note {
	return s.store.List(filters)
}

func (s *Service) CreateNote(req *NoteRequest) (*domain.Note, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	priority := domain.NotePriorityMedium
	if req.Priority != "" {
		priority = domain.NotePriority(req.Priority)
	}

	note := &domain.Note{
		ID:          s.ids(),
		EntityType:  domain.NoteEntityType(req.EntityType),
		EntityID:    req.EntityID,
		Content:     req.Content,
		Author:      req.Author,
		Priority:    priority,
		Responsible: req.Responsible,
		ReminderAt:  req.ReminderAt,
		CreatedAt:   time.Now(),
	}

	s.store.Create(note)
	return note, nil
}
