package reservationrepo

import (
	"context"
	"database/sql"
	"time"

	"biblioteca/model"
)

// ListFilter carries the optional filters and pagination for the read side.
type ListFilter struct {
	UserID    *int64
	BookID    *int64
	Active    *bool
	Confirmed *bool
	Today     time.Time
	Page      int
	Limit     int
}

type Repo interface {
	// WithTx runs fn inside a serializable transaction. Repo methods
	// called with the context given to fn execute on that transaction.
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
	List(ctx context.Context, f ListFilter) ([]model.ReservationDetail, int64, error)
	Stats(ctx context.Context) (*model.ReservationStats, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.db, fn)
}

func (r *repo) GetUser(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, nome, email, ativo, criado_em
		FROM usuarios
		WHERE id = $1
		FOR SHARE`
	var u model.User
	err := querier(ctx, r.db).QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Active, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) GetBookForUpdate(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
		SELECT id, titulo, autor, isbn, editora, ano_publicacao, disponivel, criado_em
		FROM livros
		WHERE id = $1
		FOR UPDATE`
	var b model.Book
	err := querier(ctx, r.db).QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Publisher, &b.Year, &b.Available, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindOverlapping returns the ids of reservations for the book whose
// inclusive [data_retirada, data_devolucao] window shares at least one
// day with [pickup, ret].
func (r *repo) FindOverlapping(ctx context.Context, bookID int64, pickup, ret time.Time) ([]int64, error) {
	const q = `
		SELECT id
		FROM reservas
		WHERE livro_id = $1
		AND data_retirada <= $3
		AND data_devolucao >= $2
		ORDER BY id`
	rows, err := querier(ctx, r.db).QueryContext(ctx, q, bookID, pickup, ret)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repo) CountActive(ctx context.Context, userID int64, today time.Time) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM reservas
		WHERE usuario_id = $1
		AND data_devolucao >= $2`
	var n int
	err := querier(ctx, r.db).QueryRowContext(ctx, q, userID, today).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, rsv *model.Reservation) (int64, error) {
	const q = `
		INSERT INTO reservas (usuario_id, livro_id, data_retirada, data_devolucao, confirmado_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, criado_em`
	err := querier(ctx, r.db).QueryRowContext(ctx, q,
		rsv.UserID, rsv.BookID, rsv.PickupDate, rsv.ReturnDate, rsv.EmailConfirmed,
	).Scan(&rsv.ID, &rsv.CreatedAt)
	if err != nil {
		return 0, err
	}
	return rsv.ID, nil
}

func (r *repo) SetBookAvailability(ctx context.Context, bookID int64, available bool) error {
	const q = `
		UPDATE livros
		SET disponivel = $2
		WHERE id = $1`
	_, err := querier(ctx, r.db).ExecContext(ctx, q, bookID, available)
	return err
}

func (r *repo) GetForUpdate(ctx context.Context, id int64) (*model.Reservation, error) {
	const q = `
		SELECT id, usuario_id, livro_id, data_retirada, data_devolucao, confirmado_email, criado_em
		FROM reservas
		WHERE id = $1
		FOR UPDATE`
	var rsv model.Reservation
	err := querier(ctx, r.db).QueryRowContext(ctx, q, id).Scan(
		&rsv.ID, &rsv.UserID, &rsv.BookID,
		&rsv.PickupDate, &rsv.ReturnDate, &rsv.EmailConfirmed, &rsv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rsv, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM reservas WHERE id = $1`
	res, err := querier(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) ConfirmEmail(ctx context.Context, id int64) error {
	const q = `
		UPDATE reservas
		SET confirmado_email = TRUE
		WHERE id = $1`
	res, err := querier(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) GetDetail(ctx context.Context, id int64) (*model.ReservationDetail, error) {
	const q = detailSelect + ` WHERE r.id = $1`
	var d model.ReservationDetail
	err := querier(ctx, r.db).QueryRowContext(ctx, q, id).Scan(detailDest(&d)...)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repo) Stats(ctx context.Context) (*model.ReservationStats, error) {
	const q = `
		SELECT
			COUNT(*) AS total_reservas,
			COUNT(*) FILTER (WHERE data_retirada > CURRENT_DATE) AS reservas_futuras,
			COUNT(*) FILTER (WHERE data_retirada <= CURRENT_DATE AND data_devolucao >= CURRENT_DATE) AS reservas_ativas,
			COUNT(*) FILTER (WHERE confirmado_email) AS emails_confirmados,
			COUNT(*) FILTER (WHERE NOT confirmado_email) AS emails_pendentes
		FROM reservas`
	var s model.ReservationStats
	err := querier(ctx, r.db).QueryRowContext(ctx, q).Scan(
		&s.Total, &s.Future, &s.Active, &s.EmailsConfirmed, &s.EmailsPending,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

const detailSelect = `
	SELECT
		r.id, r.usuario_id, r.livro_id, r.data_retirada, r.data_devolucao,
		r.confirmado_email, r.criado_em,
		u.nome  AS usuario_nome,
		u.email AS usuario_email,
		l.titulo AS livro_titulo,
		l.autor  AS livro_autor,
		l.isbn   AS livro_isbn,
		l.editora AS livro_editora,
		l.ano_publicacao AS livro_ano_publicacao
	FROM reservas r
	JOIN usuarios u ON u.id = r.usuario_id
	JOIN livros l   ON l.id = r.livro_id`

func detailDest(d *model.ReservationDetail) []any {
	return []any{
		&d.ID, &d.UserID, &d.BookID, &d.PickupDate, &d.ReturnDate,
		&d.EmailConfirmed, &d.CreatedAt,
		&d.UserName, &d.UserEmail,
		&d.BookTitle, &d.BookAuthor, &d.BookISBN,
		&d.Publisher, &d.Year,
	}
}
