package bookrepo

import (
	"context"
	"database/sql"

	"biblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	const q = `
		INSERT INTO livros (titulo, autor, isbn, editora, ano_publicacao, disponivel)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, criado_em`
	return r.db.QueryRowContext(ctx, q,
		b.Title, b.Author, b.ISBN, b.Publisher, b.Year, b.Available,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	const q = `
		SELECT id, titulo, autor, isbn, editora, ano_publicacao, disponivel, criado_em
		FROM livros
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Publisher, &b.Year, &b.Available, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
		SELECT id, titulo, autor, isbn, editora, ano_publicacao, disponivel, criado_em
		FROM livros
		WHERE id = $1`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Publisher, &b.Year, &b.Available, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, b *model.Book) error {
	const q = `
		UPDATE livros
		SET titulo = $2, autor = $3, isbn = $4, editora = $5, ano_publicacao = $6, disponivel = $7
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, b.ID, b.Title, b.Author, b.ISBN, b.Publisher, b.Year, b.Available)
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
	const q = `DELETE FROM livros WHERE id = $1`
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
