package reservation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"biblioteca/model"
	rs "biblioteca/service/reservation"
)

type fakeSvc struct {
	createFn  func(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error)
	getFn     func(ctx context.Context, id int64) (*model.ReservationDetail, error)
	listFn    func(ctx context.Context, in rs.ListInput) (*rs.Page, error)
	cancelFn  func(ctx context.Context, id int64) error
	confirmFn func(ctx context.Context, id int64) error
	statsFn   func(ctx context.Context) (*model.ReservationStats, error)
}

func (f *fakeSvc) Create(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error) {
	return f.createFn(ctx, in)
}
func (f *fakeSvc) Get(ctx context.Context, id int64) (*model.ReservationDetail, error) {
	return f.getFn(ctx, id)
}
func (f *fakeSvc) List(ctx context.Context, in rs.ListInput) (*rs.Page, error) {
	return f.listFn(ctx, in)
}
func (f *fakeSvc) Cancel(ctx context.Context, id int64) error       { return f.cancelFn(ctx, id) }
func (f *fakeSvc) ConfirmEmail(ctx context.Context, id int64) error { return f.confirmFn(ctx, id) }
func (f *fakeSvc) Stats(ctx context.Context) (*model.ReservationStats, error) {
	return f.statsFn(ctx)
}

var _ rs.Service = (*fakeSvc)(nil)

// coded mimics the service's coded errors from outside the package.
type coded struct{ c rs.ErrCode }

func (e coded) Error() string    { return string(e.c) }
func (e coded) Code() rs.ErrCode { return e.c }

func setup(svc rs.Service) (*echo.Echo, *Controller) {
	e := echo.New()
	h := &Controller{Svc: svc, Log: slog.Default()}
	return e, h
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	_ = h(c)
	return rec
}

func TestCreate_Created(t *testing.T) {
	svc := &fakeSvc{
		createFn: func(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error) {
			require.Equal(t, int64(1), *in.UserID)
			require.Equal(t, int64(2), *in.BookID)
			d := &model.ReservationDetail{}
			d.ID = 10
			d.UserName = "Ana"
			return d, nil
		},
	}
	e, h := setup(svc)

	rec := doJSON(e, h.Create, http.MethodPost, "/reservas",
		`{"usuario_id":1,"livro_id":2,"data_retirada":"2025-06-11","data_devolucao":"2025-06-16"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "reserva")
	require.Contains(t, body, "mensagem")
}

func TestCreate_ValidationErrorListsFields(t *testing.T) {
	svc := &fakeSvc{
		createFn: func(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error) {
			return nil, &rs.ValidationError{
				Reason:  rs.ReasonMissingFields,
				Message: "required fields missing",
				Fields:  []string{"livro_id", "data_devolucao"},
			}
		},
	}
	e, h := setup(svc)

	rec := doJSON(e, h.Create, http.MethodPost, "/reservas", `{"usuario_id":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Erro   string   `json:"erro"`
		Motivo string   `json:"motivo"`
		Campos []string `json:"campos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, rs.ReasonMissingFields, body.Motivo)
	require.Equal(t, []string{"livro_id", "data_devolucao"}, body.Campos)
}

func TestCreate_Conflict(t *testing.T) {
	svc := &fakeSvc{
		createFn: func(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error) {
			return nil, coded{rs.ErrConflict}
		},
	}
	e, h := setup(svc)

	rec := doJSON(e, h.Create, http.MethodPost, "/reservas",
		`{"usuario_id":1,"livro_id":2,"data_retirada":"2025-06-11","data_devolucao":"2025-06-16"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreate_NotFoundKinds(t *testing.T) {
	for _, code := range []rs.ErrCode{rs.ErrUserNotFound, rs.ErrBookNotFound} {
		svc := &fakeSvc{
			createFn: func(ctx context.Context, in rs.CreateInput) (*model.ReservationDetail, error) {
				return nil, coded{code}
			},
		}
		e, h := setup(svc)
		rec := doJSON(e, h.Create, http.MethodPost, "/reservas",
			`{"usuario_id":1,"livro_id":2,"data_retirada":"2025-06-11","data_devolucao":"2025-06-16"}`)
		require.Equal(t, http.StatusNotFound, rec.Code, "code %s", code)
	}
}

func TestCreate_MistypedFieldNamed(t *testing.T) {
	e, h := setup(&fakeSvc{})

	rec := doJSON(e, h.Create, http.MethodPost, "/reservas",
		`{"usuario_id":1,"livro_id":2,"data_retirada":"2025-06-11","data_devolucao":"2025-06-16","confirmado_email":"yes"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "confirmado_email")
}

func TestGet_BadID(t *testing.T) {
	e, h := setup(&fakeSvc{})
	rec := doJSON(e, h.Get, http.MethodGet, "/reservas/abc", "", "id", "abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_NotFound(t *testing.T) {
	svc := &fakeSvc{
		getFn: func(ctx context.Context, id int64) (*model.ReservationDetail, error) {
			return nil, coded{rs.ErrNotFound}
		},
	}
	e, h := setup(svc)
	rec := doJSON(e, h.Get, http.MethodGet, "/reservas/99", "", "id", "99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancel_AlreadyStarted(t *testing.T) {
	svc := &fakeSvc{
		cancelFn: func(ctx context.Context, id int64) error { return coded{rs.ErrAlreadyStarted} },
	}
	e, h := setup(svc)
	rec := doJSON(e, h.Cancel, http.MethodDelete, "/reservas/5", "", "id", "5")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmEmail_Repeat(t *testing.T) {
	svc := &fakeSvc{
		confirmFn: func(ctx context.Context, id int64) error { return coded{rs.ErrAlreadyConfirmed} },
	}
	e, h := setup(svc)
	rec := doJSON(e, h.ConfirmEmail, http.MethodPatch, "/reservas/5/confirmar", "", "id", "5")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_PassesFiltersAndPaginates(t *testing.T) {
	var got rs.ListInput
	svc := &fakeSvc{
		listFn: func(ctx context.Context, in rs.ListInput) (*rs.Page, error) {
			got = in
			return &rs.Page{Page: 2, Limit: 5, Total: 11, Pages: 3}, nil
		},
	}
	e, h := setup(svc)

	rec := doJSON(e, h.List, http.MethodGet,
		"/reservas?usuario_id=1&livro_id=2&ativas=true&confirmadas=false&pagina=2&limite=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got.UserID)
	require.Equal(t, int64(1), *got.UserID)
	require.NotNil(t, got.BookID)
	require.Equal(t, int64(2), *got.BookID)
	require.NotNil(t, got.Active)
	require.True(t, *got.Active)
	require.NotNil(t, got.Confirmed)
	require.False(t, *got.Confirmed)
	require.Equal(t, 2, got.Page)
	require.Equal(t, 5, got.Limit)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "reservas")
	require.Contains(t, body, "paginacao")
}

func TestStats_OK(t *testing.T) {
	svc := &fakeSvc{
		statsFn: func(ctx context.Context) (*model.ReservationStats, error) {
			return &model.ReservationStats{Total: 3, Future: 1}, nil
		},
	}
	e, h := setup(svc)
	rec := doJSON(e, h.Stats, http.MethodGet, "/reservas/estatisticas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "total_reservas")
}
