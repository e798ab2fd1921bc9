package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criado_em"`
}
