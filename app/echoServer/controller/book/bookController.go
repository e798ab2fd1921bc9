package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"biblioteca/model"
	bs "biblioteca/service/book"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /livros
func (h *Controller) Create(c echo.Context) error {
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}

	b := reqToBook(req)
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		return h.mapErr(c, "book create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"mensagem": "book registered", "livro": b})
}

// GET /livros
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /livros/:id
func (h *Controller) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, "book get", err)
	}
	return c.JSON(http.StatusOK, b)
}

// PUT /livros/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}

	b := reqToBook(req)
	b.ID = id
	if err := h.Svc.Update(c.Request().Context(), b); err != nil {
		return h.mapErr(c, "book update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "book updated", "livro": b})
}

// DELETE /livros/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.mapErr(c, "book delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "book deleted", "id": id})
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, bs.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"erro": "book not found"})
	case errors.Is(err, bs.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid payload"})
	case errors.Is(err, bs.ErrInUse):
		return c.JSON(http.StatusConflict, echo.Map{"erro": "book has related records"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
}

func reqToBook(req BookReq) *model.Book {
	b := &model.Book{
		Title:     req.Titulo,
		Author:    req.Autor,
		ISBN:      req.ISBN,
		Publisher: req.Editora,
		Year:      req.AnoPublicacao,
		Available: true,
	}
	if req.Disponivel != nil {
		b.Available = *req.Disponivel
	}
	return b
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
