package reservation

// CreateReservationReq uses pointer fields so the domain validator can
// tell absent fields apart from zero values and report them by name.
// Dates are YYYY-MM-DD strings.
type CreateReservationReq struct {
	UsuarioID       *int64  `json:"usuario_id"`
	LivroID         *int64  `json:"livro_id"`
	DataRetirada    *string `json:"data_retirada"`
	DataDevolucao   *string `json:"data_devolucao"`
	ConfirmadoEmail *bool   `json:"confirmado_email"`
}
