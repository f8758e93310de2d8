package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL. El perfil vive en columnas de users.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, age, first_name, last_name, phone, photo, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Age,
		&u.Profile.FirstName, &u.Profile.LastName, &u.Profile.Phone, &u.Profile.Photo,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Email duplicado devuelve ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Age,
		u.Profile.FirstName, u.Profile.LastName, u.Profile.Phone, u.Profile.Photo,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapError("insert user", err)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return queryOne(ctx, r.q, "get user", `SELECT `+userColumns+` FROM users WHERE id = $1`, scanUser, id)
}

// FindByEmail obtiene un usuario por email (se guarda en minúsculas).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return queryOne(ctx, r.q, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = $1`, scanUser, email)
}

// Update actualiza nombre, edad y perfil.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET name = $2, age = $3, first_name = $4, last_name = $5, phone = $6, photo = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Age, u.Profile.FirstName, u.Profile.LastName, u.Profile.Phone, u.Profile.Photo, u.UpdatedAt)
	return mustAffect(tag, err, "update user")
}

// List lista usuarios con paginación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return queryList(ctx, r.q, "list users",
		`SELECT `+userColumns+` FROM users ORDER BY created_at LIMIT $1 OFFSET $2`, scanUser, limit, offset)
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "users", id)
}
