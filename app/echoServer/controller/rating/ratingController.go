package rating

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rts "biblioteca/service/rating"
)

type Controller struct {
	Svc rts.Service
	V   *validator.Validate
	Log *slog.Logger
}

type RatingReq struct {
	UsuarioID  int64  `json:"usuario_id" validate:"required,gt=0"`
	LivroID    int64  `json:"livro_id" validate:"required,gt=0"`
	Nota       int    `json:"nota" validate:"required,gte=1,lte=5"`
	Comentario string `json:"comentario" validate:"required"`
}

// POST /avaliacoes
func (h *Controller) Create(c echo.Context) error {
	var req RatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}

	rt, err := h.Svc.Create(c.Request().Context(), req.UsuarioID, req.LivroID, req.Nota, req.Comentario)
	if err != nil {
		switch {
		case errors.Is(err, rts.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid payload"})
		case errors.Is(err, rts.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"erro": "user or book not found"})
		default:
			h.Log.Error("rating create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"mensagem": "rating submitted", "avaliacao": rt})
}

// GET /avaliacoes
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rating list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}
