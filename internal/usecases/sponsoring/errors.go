package sponsoring

import "errors"

var (
	ErrSponsorNotFound     = errors.New("sponsor não encontrado")
	ErrSubResourceNotFound = errors.New("sub-recurso não encontrado no sponsor")
)

// FieldError descreve a falha de validação de um campo do formulário
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega as falhas de validação de uma requisição.
// Uma requisição só vira entidade depois de validar sem erros.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "dados obrigatórios ausentes ou inválidos"
}

func newValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
