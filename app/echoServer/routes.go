package echoServer

import (
	"github.com/labstack/echo/v4"

	"biblioteca/app/echoServer/controller/book"
	"biblioteca/app/echoServer/controller/favorite"
	"biblioteca/app/echoServer/controller/rating"
	"biblioteca/app/echoServer/controller/reservation"
	"biblioteca/app/echoServer/controller/user"
)

type C struct {
	User        *user.Controller
	Book        *book.Controller
	Reservation *reservation.Controller
	Rating      *rating.Controller
	Favorite    *favorite.Controller
}

func Register(e *echo.Echo, c C) {
	u := e.Group("/usuarios")
	u.POST("", c.User.Create)
	u.GET("", c.User.List)
	u.GET("/:id", c.User.Get)
	u.PUT("/:id", c.User.Update)
	u.DELETE("/:id", c.User.Delete)

	l := e.Group("/livros")
	l.POST("", c.Book.Create)
	l.GET("", c.Book.List)
	l.GET("/:id", c.Book.Get)
	l.PUT("/:id", c.Book.Update)
	l.DELETE("/:id", c.Book.Delete)

	r := e.Group("/reservas")
	r.POST("", c.Reservation.Create)
	r.GET("", c.Reservation.List)
	r.GET("/estatisticas", c.Reservation.Stats)
	r.GET("/:id", c.Reservation.Get)
	r.DELETE("/:id", c.Reservation.Cancel)
	r.PATCH("/:id/confirmar", c.Reservation.ConfirmEmail)

	a := e.Group("/avaliacoes")
	a.POST("", c.Rating.Create)
	a.GET("", c.Rating.List)

	f := e.Group("/favoritos")
	f.POST("", c.Favorite.Create)
	f.GET("", c.Favorite.List)
	f.DELETE("/:id", c.Favorite.Delete)
}
