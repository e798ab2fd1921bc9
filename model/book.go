package model

import "time"

type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"titulo"`
	Author    string    `json:"autor"`
	ISBN      string    `json:"isbn"`
	Publisher *string   `json:"editora,omitempty"`
	Year      *int      `json:"ano_publicacao,omitempty"`
	Available bool      `json:"disponivel"`
	CreatedAt time.Time `json:"criado_em"`
}
