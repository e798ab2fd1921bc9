package userrepo

import (
	"context"
	"database/sql"

	"biblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO usuarios (nome, email, ativo)
		VALUES ($1, $2, $3)
		RETURNING id, criado_em`
	return r.db.QueryRowContext(ctx, q, u.Name, u.Email, u.Active).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT id, nome, email, ativo, criado_em
		FROM usuarios
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, nome, email, ativo, criado_em
		FROM usuarios
		WHERE id = $1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) Update(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE usuarios
		SET nome = $2, email = $3, ativo = $4
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.Active)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM usuarios WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
