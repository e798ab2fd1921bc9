package model

import "time"

type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuario_id"`
	BookID    int64     `json:"livro_id"`
	Score     int       `json:"nota"`
	Comment   string    `json:"comentario"`
	CreatedAt time.Time `json:"criado_em"`
}
