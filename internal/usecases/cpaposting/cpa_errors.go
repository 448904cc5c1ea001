package cpaposting

import (
	"errors"
	"fmt"
)

// Erros do lançamento de CPAs
var (
	ErrValidation    = errors.New("lote inválido")
	ErrLinkNotFound  = errors.New("link não encontrado")
	ErrScopeDenied   = errors.New("parceiro fora do escopo do usuário")
	ErrFxUnavailable = errors.New("nenhum snapshot de câmbio disponível")
)

// CpaError carrega o código de API junto do erro base, no mesmo formato dos
// erros de autenticação.
type CpaError struct {
	Err     error
	Code    string
	Details string
}

func (e *CpaError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CpaError) Unwrap() error {
	return e.Err
}

func NewCpaError(baseErr error, code string, details string) *CpaError {
	return &CpaError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
