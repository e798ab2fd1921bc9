package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"biblioteca/model"
	us "biblioteca/service/user"
)

type Controller struct {
	Svc us.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /usuarios
func (h *Controller) Create(c echo.Context) error {
	var req UserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}

	active := true
	if req.Ativo != nil {
		active = *req.Ativo
	}
	u, err := h.Svc.Create(c.Request().Context(), req.Nome, req.Email, active)
	if err != nil {
		return h.mapErr(c, "user create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"mensagem": "user created", "usuario": u})
}

// GET /usuarios
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("user list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"erro": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /usuarios/:id
func (h *Controller) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, "user get", err)
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /usuarios/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	var req UserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "validation error", "detalhes": err.Error()})
	}

	u := &model.User{ID: id, Name: req.Nome, Email: req.Email, Active: true}
	if req.Ativo != nil {
		u.Active = *req.Ativo
	}
	if err := h.Svc.Update(c.Request().Context(), u); err != nil {
		return h.mapErr(c, "user update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "user updated", "usuario": u})
}

// DELETE /usuarios/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "id must be a positive number"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.mapErr(c, "user delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "user deleted", "id": id})
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, us.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"erro": "user not found"})
	case errors.Is(err, us.ErrEmailTaken):
		return c.JSON(http.StatusConflict, echo.Map{"erro": "email already registered"})
	case errors.Is(err, us.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "invalid payload"})
	case errors.Is(err, us.ErrInUse):
		return c.JSON(http.StatusConflict, echo.Map{"erro": "user has related records"})
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
