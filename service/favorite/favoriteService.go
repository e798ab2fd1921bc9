package favoritesvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca/model"
	favoriterepo "biblioteca/repository/favorite"
)

var (
	ErrBadInput  = errors.New("bad input")
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("book already favorited")
)

type Service interface {
	Create(ctx context.Context, userID, bookID int64, markedAt time.Time) (*model.Favorite, error)
	List(ctx context.Context) ([]model.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r favoriterepo.Repo }

func New(r favoriterepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, userID, bookID int64, markedAt time.Time) (*model.Favorite, error) {
	if userID <= 0 || bookID <= 0 || markedAt.IsZero() {
		return nil, ErrBadInput
	}
	f := &model.Favorite{UserID: userID, BookID: bookID, MarkedAt: markedAt}
	if err := s.r.Create(ctx, f); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, ErrDuplicate
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrNotFound
			}
		}
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]model.Favorite, error) { return s.r.List(ctx) }

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
