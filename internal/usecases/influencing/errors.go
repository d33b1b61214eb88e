package influencing

import "errors"

var (
	ErrInfluencerNotFound   = errors.New("influencer não encontrado")
	ErrCampaignNotFound     = errors.New("campanha não encontrada no influencer")
	ErrCampaignItemNotFound = errors.New("item de campanha não encontrado")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "dados obrigatórios ausentes ou inválidos"
}

func newValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
