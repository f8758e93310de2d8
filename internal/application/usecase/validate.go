package usecase

import (
	"context"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/miinventory-api/internal/domain"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid(field, "es requerido")
	}
	return nil
}

// optionalEmail valida el formato solo si viene informado.
func optionalEmail(field, value string) error {
	if value != "" && !govalidator.IsEmail(value) {
		return domain.Invalid(field, "email inválido")
	}
	return nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.Invalid(field, "no puede ser negativo")
	}
	return nil
}

func positive(field string, v int64) error {
	if v <= 0 {
		return domain.Invalid(field, "debe ser mayor que cero")
	}
	return nil
}

// mustExist ejecuta el lookup y traduce "no encontrado" (nil) a ErrNotFound.
func mustExist[T any](ctx context.Context, id string, get func(context.Context, string) (*T, error)) (*T, error) {
	v, err := get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// optionalRef verifica la referencia solo si viene informada (puntero no nil y no vacío).
func optionalRef[T any](ctx context.Context, id *string, get func(context.Context, string) (*T, error)) error {
	if id == nil || *id == "" {
		return nil
	}
	_, err := mustExist(ctx, *id, get)
	return err
}

