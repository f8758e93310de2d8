package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/miinventory-api/internal/domain"
)

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// NewListResponse arma la respuesta; Total es la cantidad de elementos de la página.
func NewListResponse[T any](items []T, limit, offset int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{
		Items: items,
		Page:  PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseDate acepta "2006-01-02" o RFC3339. Cadena vacía devuelve nil.
func ParseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, domain.Invalid(field, "fecha inválida, use YYYY-MM-DD o RFC3339")
	}
	return &t, nil
}

// BlankToNil normaliza "" (o solo espacios) a nil para columnas FK opcionales.
func BlankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
