package postgre

import (
	"context"
	"database/sql"

	"zenith-planner/internal/model"
	repo "zenith-planner/internal/task/repository"
)

// GetOrCreateUser returns the user with the given email, inserting a
// new row on first sight.
func (r *implRepository) GetOrCreateUser(ctx context.Context, email, name string) (model.User, error) {
	const selectQuery = `SELECT id, email, name, created_at FROM users WHERE email = $1`

	var u model.User
	err := r.db.QueryRowContext(ctx, selectQuery, email).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err == nil {
		return u, nil
	}
	if err != sql.ErrNoRows {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreateUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}

	// ON CONFLICT covers a concurrent first login with the same email.
	const insertQuery = `
		INSERT INTO users (email, name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = users.name
		RETURNING id, email, name, created_at`

	err = r.db.QueryRowContext(ctx, insertQuery, email, name).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("GetOrCreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}
