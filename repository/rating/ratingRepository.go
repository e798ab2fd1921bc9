package ratingrepo

import (
	"context"
	"database/sql"

	"biblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, rt *model.Rating) error
	List(ctx context.Context) ([]model.Rating, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, rt *model.Rating) error {
	const q = `
		INSERT INTO avaliacoes (usuario_id, livro_id, nota, comentario)
		VALUES ($1, $2, $3, $4)
		RETURNING id, criado_em`
	return r.db.QueryRowContext(ctx, q, rt.UserID, rt.BookID, rt.Score, rt.Comment).
		Scan(&rt.ID, &rt.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Rating, error) {
	const q = `
		SELECT id, usuario_id, livro_id, nota, comentario, criado_em
		FROM avaliacoes
		ORDER BY criado_em DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rating
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.BookID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
