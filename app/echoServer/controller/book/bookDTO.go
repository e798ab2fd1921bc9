package book

type BookReq struct {
	Titulo        string  `json:"titulo" validate:"required"`
	Autor         string  `json:"autor" validate:"required"`
	ISBN          string  `json:"isbn" validate:"required"`
	Editora       *string `json:"editora"`
	AnoPublicacao *int    `json:"ano_publicacao" validate:"omitempty,gte=0"`
	Disponivel    *bool   `json:"disponivel"`
}
