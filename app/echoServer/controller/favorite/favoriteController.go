package favorite

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	fs "biblioteca/service/favorite"
)

type Controller struct {
	Svc fs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type FavoriteReq struct {
	UsuarioID      int64  `json:"usuario_id" validate:"required,gt=0"`
	LivroID        int64  `json:"livro_id" validate:"required,gt=0"`
	DataFavoritado string `json:"data_favoritado" validate:"required,datetime=2006-01-02"`
}

// POST /favoritos
func (h *Controller) Create(c echo.Context) error {
	var req FavoriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}
	markedAt, _ := time.ParseInLocation(time.DateOnly, req.DataFavoritado, time.UTC)

	f, err := h.Svc.Create(c.Request().Context(), req.UsuarioID, req.LivroID, markedAt)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid payload"})
		case errors.Is(err, fs.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"erro": "book already favorited"})
		case errors.Is(err, fs.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"erro": "user or book not found"})
		default:
			h.Log.Error("favorite create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"mensagem": "favorite marked", "favorito": f})
}

// GET /favoritos
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("favorite list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /favoritos/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, fs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"erro": "favorite not found"})
		}
		h.Log.Error("favorite delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "favorite removed", "id": id})
}
