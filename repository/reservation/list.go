package reservationrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"biblioteca/model"
)

var dialect = goqu.Dialect("postgres")

// List returns one page of reservations matching the filters, newest
// first, plus the total number of matching rows.
func (r *repo) List(ctx context.Context, f ListFilter) ([]model.ReservationDetail, int64, error) {
	conds := make([]goqu.Expression, 0, 4)
	if f.UserID != nil {
		conds = append(conds, goqu.I("r.usuario_id").Eq(*f.UserID))
	}
	if f.BookID != nil {
		conds = append(conds, goqu.I("r.livro_id").Eq(*f.BookID))
	}
	if f.Active != nil {
		if *f.Active {
			conds = append(conds, goqu.I("r.data_devolucao").Gte(f.Today))
		} else {
			conds = append(conds, goqu.I("r.data_devolucao").Lt(f.Today))
		}
	}
	if f.Confirmed != nil {
		conds = append(conds, goqu.I("r.confirmado_email").Eq(*f.Confirmed))
	}

	base := dialect.From(goqu.T("reservas").As("r")).
		Join(goqu.T("usuarios").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.usuario_id")))).
		Join(goqu.T("livros").As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("r.livro_id")))).
		Where(conds...)

	countSQL, countArgs, err := base.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := querier(ctx, r.db).QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	pageSQL, pageArgs, err := base.Select(
		goqu.I("r.id"), goqu.I("r.usuario_id"), goqu.I("r.livro_id"),
		goqu.I("r.data_retirada"), goqu.I("r.data_devolucao"),
		goqu.I("r.confirmado_email"), goqu.I("r.criado_em"),
		goqu.I("u.nome").As("usuario_nome"),
		goqu.I("u.email").As("usuario_email"),
		goqu.I("l.titulo").As("livro_titulo"),
		goqu.I("l.autor").As("livro_autor"),
		goqu.I("l.isbn").As("livro_isbn"),
		goqu.I("l.editora").As("livro_editora"),
		goqu.I("l.ano_publicacao").As("livro_ano_publicacao"),
	).
		Order(goqu.I("r.criado_em").Desc(), goqu.I("r.id").Desc()).
		Limit(uint(f.Limit)).
		Offset(uint(offset)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	rows, err := querier(ctx, r.db).QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.ReservationDetail
	for rows.Next() {
		var d model.ReservationDetail
		if err := rows.Scan(detailDest(&d)...); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}
