package usersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca/model"
	userrepo "biblioteca/repository/user"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrBadInput   = errors.New("bad input")
	ErrInUse      = errors.New("user has related records")
)

type Service interface {
	Create(ctx context.Context, name, email string, active bool) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r userrepo.Repo }

func New(r userrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, name, email string, active bool) (*model.User, error) {
	if name == "" || email == "" {
		return nil, ErrBadInput
	}
	u := &model.User{Name: name, Email: email, Active: active}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]model.User, error) { return s.r.List(ctx) }

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, u *model.User) error {
	if u.Name == "" || u.Email == "" {
		return ErrBadInput
	}
	return mapErr(s.r.Update(ctx, u))
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
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEmailTaken
		case pgerrcode.ForeignKeyViolation:
			return ErrInUse
		}
	}
	return err
}
