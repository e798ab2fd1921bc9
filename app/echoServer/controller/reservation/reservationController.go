package reservation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	rs "biblioteca/service/reservation"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /reservas
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		// A non-boolean confirmado_email (or other mistyped field) shows
		// up as a JSON type error; name the field for the caller.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"erro":   "field has the wrong type",
				"campos": []string{typeErr.Field},
			})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}

	out, err := h.Svc.Create(c.Request().Context(), rs.CreateInput{
		UserID:         req.UsuarioID,
		BookID:         req.LivroID,
		PickupDate:     req.DataRetirada,
		ReturnDate:     req.DataDevolucao,
		EmailConfirmed: req.ConfirmadoEmail,
	})
	if err != nil {
		return h.mapErr(c, "reservation create", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensagem": "reservation created",
		"reserva":  out,
	})
}

// GET /reservas
func (h *Controller) List(c echo.Context) error {
	in := rs.ListInput{
		UserID:    queryInt64(c, "usuario_id"),
		BookID:    queryInt64(c, "livro_id"),
		Active:    queryBool(c, "ativas"),
		Confirmed: queryBool(c, "confirmadas"),
	}
	if p := queryInt64(c, "pagina"); p != nil {
		in.Page = int(*p)
	}
	if l := queryInt64(c, "limite"); l != nil {
		in.Limit = int(*l)
	}

	page, err := h.Svc.List(c.Request().Context(), in)
	if err != nil {
		h.Log.Error("reservation list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reservas": page.Items,
		"paginacao": echo.Map{
			"pagina":  page.Page,
			"limite":  page.Limit,
			"total":   page.Total,
			"paginas": page.Pages,
		},
	})
}

// GET /reservas/:id
func (h *Controller) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	out, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, "reservation get", err)
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /reservas/:id
func (h *Controller) Cancel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		return h.mapErr(c, "reservation cancel", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensagem": "reservation cancelled",
		"id":       id,
	})
}

// PATCH /reservas/:id/confirmar
func (h *Controller) ConfirmEmail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	if err := h.Svc.ConfirmEmail(c.Request().Context(), id); err != nil {
		return h.mapErr(c, "reservation confirm email", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensagem": "email confirmed",
		"id":       id,
	})
}

// GET /reservas/estatisticas
func (h *Controller) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		h.Log.Error("reservation stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	var verr *rs.ValidationError
	if errors.As(err, &verr) {
		body := echo.Map{"erro": verr.Message, "motivo": verr.Reason}
		if len(verr.Fields) > 0 {
			body["campos"] = verr.Fields
		}
		return c.JSON(http.StatusBadRequest, body)
	}

	switch rs.Code(err) {
	case rs.ErrUserNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"erro": "user not found"})
	case rs.ErrBookNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"erro": "book not found"})
	case rs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"erro": "reservation not found"})
	case rs.ErrUserInactive:
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "user is inactive"})
	case rs.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"erro": "book already reserved for this period"})
	case rs.ErrLimitExceeded:
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "active reservation limit reached"})
	case rs.ErrAlreadyStarted:
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "reservation has already started"})
	case rs.ErrAlreadyConfirmed:
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "email already confirmed"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt64(c echo.Context, name string) *int64 {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func queryBool(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
