package query

import "errors"

// Erros de configuração da consulta. São devolvidos, nunca corrigidos em silêncio.
var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidPageSize      = errors.New("page size must be positive")
	ErrInvalidPage          = errors.New("page must be greater than zero")
)
