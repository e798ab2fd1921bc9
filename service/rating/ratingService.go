package ratingsvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca/model"
	ratingrepo "biblioteca/repository/rating"
)

var (
	ErrBadInput = errors.New("bad input")
	ErrNotFound = errors.New("user or book not found")
)

type Service interface {
	Create(ctx context.Context, userID, bookID int64, score int, comment string) (*model.Rating, error)
	List(ctx context.Context) ([]model.Rating, error)
}

type service struct{ r ratingrepo.Repo }

func New(r ratingrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, userID, bookID int64, score int, comment string) (*model.Rating, error) {
	if userID <= 0 || bookID <= 0 || score < 1 || score > 5 || comment == "" {
		return nil, ErrBadInput
	}
	rt := &model.Rating{UserID: userID, BookID: bookID, Score: score, Comment: comment}
	if err := s.r.Create(ctx, rt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (s *service) List(ctx context.Context) ([]model.Rating, error) { return s.r.List(ctx) }
