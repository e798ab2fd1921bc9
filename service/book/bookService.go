package booksvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca/model"
	bookrepo "biblioteca/repository/book"
)

var (
	ErrNotFound = errors.New("book not found")
	ErrBadInput = errors.New("bad input")
	ErrInUse    = errors.New("book has related records")
)

type Service interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r bookrepo.Repo }

func New(r bookrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, b *model.Book) error {
	if b.Title == "" || b.Author == "" || b.ISBN == "" {
		return ErrBadInput
	}
	return mapErr(s.r.Create(ctx, b))
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.r.List(ctx) }

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, b *model.Book) error {
	if b.Title == "" || b.Author == "" || b.ISBN == "" {
		return ErrBadInput
	}
	return mapErr(s.r.Update(ctx, b))
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapErr(s.r.Delete(ctx, id))
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrInUse
	}
	return err
}
