package user

type UserReq struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Ativo *bool  `json:"ativo"`
}
