package model

import "time"

type Reservation struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"usuario_id"`
	BookID         int64     `json:"livro_id"`
	PickupDate     time.Time `json:"data_retirada"`
	ReturnDate     time.Time `json:"data_devolucao"`
	EmailConfirmed bool      `json:"confirmado_email"`
	CreatedAt      time.Time `json:"criado_em"`
}

// ReservationDetail is a reservation joined with user and book display
// fields for the read side.
type ReservationDetail struct {
	Reservation
	UserName   string  `json:"usuario_nome"`
	UserEmail  string  `json:"usuario_email"`
	BookTitle  string  `json:"livro_titulo"`
	BookAuthor string  `json:"livro_autor"`
	BookISBN   string  `json:"livro_isbn"`
	Publisher  *string `json:"livro_editora,omitempty"`
	Year       *int    `json:"livro_ano_publicacao,omitempty"`
}

// ReservationStats mirrors the aggregate counters exposed by
// GET /reservas/estatisticas.
type ReservationStats struct {
	Total           int64 `json:"total_reservas"`
	Future          int64 `json:"reservas_futuras"`
	Active          int64 `json:"reservas_ativas"`
	EmailsConfirmed int64 `json:"emails_confirmados"`
	EmailsPending   int64 `json:"emails_pendentes"`
}
