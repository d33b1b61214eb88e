package domain

import "time"

type NotePriority string

const (
	NotePriorityLow    NotePriority = "low"
	NotePriorityMedium NotePriority = "medium"
	NotePriorityHigh   NotePriority = "high"
)

type NoteEntityType string

const (
	NoteEntityTask     NoteEntityType = "task"
	NoteEntityArtist   NoteEntityType = "artist"
	NoteEntityProvider NoteEntityType = "provider"
	NoteEntitySponsor  NoteEntityType = "sponsor"
)

// NoteEntityAll é o sentinela de entity_id que marca uma nota visível
// para todas as entidades de um mesmo tipo
const NoteEntityAll = "all"

// Note é uma anotação livre associada a qualquer entidade por
// (entity_type, entity_id). Único componente compartilhado entre as
// quatro áreas do painel.
type Note struct {
	ID          string         `json:"id"`
	EntityType  NoteEntityType `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Content     string         `json:"content"`
	Author      string         `json:"author"`
	Priority    NotePriority   `json:"priority"`
	Responsible string         `json:"responsible,omitempty"`
	ReminderAt  *time.Time     `json:"reminder_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type NoteFilters struct {
	EntityType NoteEntityType
	EntityID   string
}

// Match seleciona notas da entidade pedida e também as notas wildcard
// ("all") do mesmo tipo de entidade
func (f NoteFilters) Match(n *Note) bool {
	if f.EntityType != "" && n.EntityType != f.EntityType {
		return false
	}

	if f.EntityID != "" && n.EntityID != f.EntityID && n.EntityID != NoteEntityAll {
		return false
	}

	return true
}
