// Package main biblioteca API.
//
// @title           Biblioteca API
// @version         1.0
// @description     Library backend (books, users, reservations, ratings, favorites).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"biblioteca/app/echoServer"
	bookctrl "biblioteca/app/echoServer/controller/book"
	favoritectrl "biblioteca/app/echoServer/controller/favorite"
	ratingctrl "biblioteca/app/echoServer/controller/rating"
	reservationctrl "biblioteca/app/echoServer/controller/reservation"
	userctrl "biblioteca/app/echoServer/controller/user"
	"biblioteca/app/echoServer/validation"
	"biblioteca/config"
	"biblioteca/migrations"
	bookrepo "biblioteca/repository/book"
	favoriterepo "biblioteca/repository/favorite"
	ratingrepo "biblioteca/repository/rating"
	reservationrepo "biblioteca/repository/reservation"
	userrepo "biblioteca/repository/user"
	booksvc "biblioteca/service/book"
	favoritesvc "biblioteca/service/favorite"
	ratingsvc "biblioteca/service/rating"
	reservationsvc "biblioteca/service/reservation"
	usersvc "biblioteca/service/user"
	"biblioteca/util/clock"
	"biblioteca/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	rr := reservationrepo.New(db)
	avr := ratingrepo.New(db)
	fr := favoriterepo.New(db)

	// services
	clk := clock.NewSystem()
	us := usersvc.New(ur)
	bs := booksvc.New(br)
	rs := reservationsvc.New(rr, clk,
		reservationsvc.WithMaxWindowDays(cfg.MaxWindowDays),
		reservationsvc.WithMaxActiveReservations(cfg.MaxActiveReservations),
	)
	avs := ratingsvc.New(avr)
	fs := favoritesvc.New(fr)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	reservationC := &reservationctrl.Controller{Svc: rs, Log: log}
	ratingC := &ratingctrl.Controller{Svc: avs, V: v, Log: log}
	favoriteC := &favoritectrl.Controller{Svc: fs, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		User:        userC,
		Book:        bookC,
		Reservation: reservationC,
		Rating:      ratingC,
		Favorite:    favoriteC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + port))
}
