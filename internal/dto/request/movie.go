package request

type MovieRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Director string `json:"director" validate:"required,max=255"`
	Year     int    `json:"year" validate:"required,gt=0"`
	Genre    string `json:"genre" validate:"required,max=100"`
}
