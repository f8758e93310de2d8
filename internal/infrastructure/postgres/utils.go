package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/miinventory-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"

	stockQuantityCheck = "stock_quantity_check"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// mapError traduce errores de PostgreSQL a errores de dominio; el resto se envuelve con op.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch pgCode(err) {
	case codeUniqueViolation:
		return domain.ErrDuplicate
	case codeForeignKeyViolation:
		return domain.ErrConflict
	case codeCheckViolation:
		if pgConstraint(err) == stockQuantityCheck {
			return domain.ErrInsufficientStock
		}
		return domain.ErrInvalidInput
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteByID borra una fila por id. ErrNotFound si no existía; ErrConflict si otra tabla la referencia.
func deleteByID(ctx context.Context, q Querier, table, id string) error {
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return mapError("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mustAffect devuelve ErrNotFound si un UPDATE no tocó filas.
func mustAffect(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return mapError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// filter arma cláusulas WHERE con placeholders numerados.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) eq(column string, value string) {
	if value == "" {
		return
	}
	f.args = append(f.args, value)
	f.conds = append(f.conds, column+" = $"+strconv.Itoa(len(f.args)))
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page agrega LIMIT/OFFSET a los argumentos y devuelve la cláusula.
func (f *filter) page(limit, offset int) string {
	f.args = append(f.args, limit, offset)
	n := len(f.args)
	return " LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n)
}

// queryOne ejecuta una consulta de una fila; nil si no hay resultado.
func queryOne[T any](ctx context.Context, q Querier, op, sql string, scan func(pgx.Row) (*T, error), args ...any) (*T, error) {
	v, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// queryList ejecuta la consulta y escanea todas las filas con scan.
func queryList[T any](ctx context.Context, q Querier, op, sql string, scan func(pgx.Row) (*T, error), args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*T, error) { return scan(row) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}
