package reservationsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca/model"
	rrepo "biblioteca/repository/reservation"
	"biblioteca/util/clock"
)

// ListInput carries the optional list filters and pagination.
type ListInput struct {
	UserID    *int64
	BookID    *int64
	Active    *bool
	Confirmed *bool
	Page      int
	Limit     int
}

// Page is one page of reservations plus pagination metadata.
type Page struct {
	Items []model.ReservationDetail
	Page  int
	Limit int
	Total int64
	Pages int64
}

type Repo interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetBookForUpdate(ctx context.Context, id int64) (*model.Book, error)
	FindOverlapping(ctx context.Context, bookID int64, pickup, ret time.Time) ([]int64, error)
	CountActive(ctx context.Context, userID int64, today time.Time) (int, error)
	Insert(ctx context.Context, rsv *model.Reservation) (int64, error)
	SetBookAvailability(ctx context.Context, bookID int64, available bool) error

	GetForUpdate(ctx context.Context, id int64) (*model.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ConfirmEmail(ctx context.Context, id int64) error

	GetDetail(ctx context.Context, id int64) (*model.ReservationDetail, error)
	List(ctx context.Context, f rrepo.ListFilter) ([]model.ReservationDetail, int64, error)
	Stats(ctx context.Context) (*model.ReservationStats, error)
}

type Service interface {
	// Create runs the full allocation workflow as one atomic unit.
	Create(ctx context.Context, in CreateInput) (*model.ReservationDetail, error)

	Get(ctx context.Context, id int64) (*model.ReservationDetail, error)
	List(ctx context.Context, in ListInput) (*Page, error)

	// Cancel deletes a not-yet-started reservation and releases the book.
	Cancel(ctx context.Context, id int64) error

	// ConfirmEmail flips confirmado_email, once.
	ConfirmEmail(ctx context.Context, id int64) error

	Stats(ctx context.Context) (*model.ReservationStats, error)
}

// ----- Service implementation -----

type service struct {
	r         Repo
	clock     clock.Clock
	maxWindow int
	maxActive int
}

const (
	defaultMaxWindowDays = 30
	defaultMaxActive     = 5
)

type Option func(*service)

// WithMaxWindowDays overrides the maximum reservation window length.
func WithMaxWindowDays(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxWindow = n
		}
	}
}

// WithMaxActiveReservations overrides the per-user active-reservation cap.
func WithMaxActiveReservations(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxActive = n
		}
	}
}

func New(r Repo, clk clock.Clock, opts ...Option) Service {
	s := &service{
		r:         r,
		clock:     clk,
		maxWindow: defaultMaxWindowDays,
		maxActive: defaultMaxActive,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the request, then checks, inserts and flips the book's
// availability inside a single serializable transaction. Any failure rolls
// back fully; no partial writes survive.
//
// Conflict detection is the source of truth for availability: a book is
// reservable for a window iff no existing reservation overlaps it. The
// disponivel flag is still maintained for the books API, but never gates
// allocation.
func (s *service) Create(ctx context.Context, in CreateInput) (*model.ReservationDetail, error) {
	today := clock.Today(s.clock.Now())

	d, verr := validateCreate(in, today, s.maxWindow)
	if verr != nil {
		return nil, verr
	}

	var created *model.ReservationDetail
	err := s.r.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.r.GetUser(ctx, d.UserID)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrUserNotFound)
		}
		if err != nil {
			return err
		}
		if !user.Active {
			return makeErr(ErrUserInactive)
		}

		if _, err := s.r.GetBookForUpdate(ctx, d.BookID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrBookNotFound)
			}
			return err
		}

		conflicts, err := s.r.FindOverlapping(ctx, d.BookID, d.Pickup, d.Return)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return makeErr(ErrConflict)
		}

		active, err := s.r.CountActive(ctx, d.UserID, today)
		if err != nil {
			return err
		}
		if active >= s.maxActive {
			return makeErr(ErrLimitExceeded)
		}

		rsv := &model.Reservation{
			UserID:         d.UserID,
			BookID:         d.BookID,
			PickupDate:     d.Pickup,
			ReturnDate:     d.Return,
			EmailConfirmed: d.EmailConfirmed,
		}
		if _, err := s.r.Insert(ctx, rsv); err != nil {
			return err
		}
		if err := s.r.SetBookAvailability(ctx, d.BookID, false); err != nil {
			return err
		}

		created, err = s.r.GetDetail(ctx, rsv.ID)
		return err
	})
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.ReservationDetail, error) {
	d, err := s.r.GetDetail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) List(ctx context.Context, in ListInput) (*Page, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := s.r.List(ctx, rrepo.ListFilter{
		UserID:    in.UserID,
		BookID:    in.BookID,
		Active:    in.Active,
		Confirmed: in.Confirmed,
		Today:     clock.Today(s.clock.Now()),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &Page{Items: items, Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	err := s.r.WithTx(ctx, func(ctx context.Context) error {
		rsv, err := s.r.GetForUpdate(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		if err != nil {
			return err
		}

		// Cancellation is only allowed strictly before pickup day.
		today := clock.Today(s.clock.Now())
		if !rsv.PickupDate.After(today) {
			return makeErr(ErrAlreadyStarted)
		}

		if err := s.r.Delete(ctx, id); err != nil {
			return err
		}
		return s.r.SetBookAvailability(ctx, rsv.BookID, true)
	})
	return mapStorageErr(err)
}

func (s *service) ConfirmEmail(ctx context.Context, id int64) error {
	err := s.r.WithTx(ctx, func(ctx context.Context) error {
		rsv, err := s.r.GetForUpdate(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		if err != nil {
			return err
		}
		if rsv.EmailConfirmed {
			return makeErr(ErrAlreadyConfirmed)
		}
		return s.r.ConfirmEmail(ctx, id)
	})
	return mapStorageErr(err)
}

func (s *service) Stats(ctx context.Context) (*model.ReservationStats, error) {
	return s.r.Stats(ctx)
}

// mapStorageErr translates constraint violations into business error
// kinds instead of surfacing them raw. Serialization failures mean this
// transaction lost a race with a concurrent allocation, which to the
// caller is a conflict.
func mapStorageErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return makeErr(ErrConflict)
		case pgerrcode.ForeignKeyViolation:
			return makeErr(ErrNotFound)
		case pgerrcode.SerializationFailure:
			return makeErr(ErrConflict)
		}
	}
	return err
}
