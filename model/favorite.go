package model

import "time"

type Favorite struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"usuario_id"`
	BookID   int64     `json:"livro_id"`
	MarkedAt time.Time `json:"data_favoritado"`
}
