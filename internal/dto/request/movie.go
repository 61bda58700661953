package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	TrailerURL  *string `json:"trailer_url,omitempty" validate:"omitempty,url"`
	Rating      string  `json:"rating,omitempty" validate:"omitempty,max=10"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
}

// MovieUpdateRequest changes only the fields that are present.
type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	TrailerURL  *string `json:"trailer_url,omitempty" validate:"omitempty,url"`
	Rating      *string `json:"rating,omitempty" validate:"omitnil,min=1,max=10"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
}
