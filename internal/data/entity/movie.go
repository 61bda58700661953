package entity

const RatingUnrated = "NR"

type Movie struct {
	Base
	Title       string  `db:"title"`
	Description *string `db:"description"`
	PosterURL   *string `db:"poster_url"`
	TrailerURL  *string `db:"trailer_url"`
	Rating      string  `db:"rating"` // MPAA style, RatingUnrated when unknown
	Genre       *string `db:"genre"`
}
