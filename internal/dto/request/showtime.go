package request

// ShowtimeRequest identifies one screening. DateTime must carry an offset;
// it is normalized to UTC before it is stored or compared.
type ShowtimeRequest struct {
	MovieID  string `json:"movie_id" validate:"required,uuid"`
	Showroom string `json:"showroom" validate:"required,showroom"`
	DateTime string `json:"date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
