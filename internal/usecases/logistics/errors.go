package logistics

import "errors"

var (
	ErrArtistNotFound   = errors.New("artista não encontrado")
	ErrProviderNotFound = errors.New("provider não encontrado")
	ErrRecordNotFound   = errors.New("registro logístico não encontrado")
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
