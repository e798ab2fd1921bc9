package favoriterepo

import (
	"context"
	"database/sql"

	"biblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, f *model.Favorite) error
	List(ctx context.Context) ([]model.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, f *model.Favorite) error {
	const q = `
		INSERT INTO favoritos (usuario_id, livro_id, data_favoritado)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q, f.UserID, f.BookID, f.MarkedAt).Scan(&f.ID)
}

func (r *repo) List(ctx context.Context) ([]model.Favorite, error) {
	const q = `
		SELECT id, usuario_id, livro_id, data_favoritado
		FROM favoritos
		ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.BookID, &f.MarkedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM favoritos WHERE id = $1`
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
