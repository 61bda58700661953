package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/notify"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Thanks for your booking, {{.Name}}!</h2>
<p>Order <strong>{{.OrderID}}</strong></p>
<p>{{.MovieTitle}}<br>{{.Showroom}}, {{.DateTime}}</p>
<table>
{{range .Tickets}}<tr><td>{{.Seat}}</td><td>{{.Category}}</td><td>${{printf "%.2f" .UnitPrice}}</td></tr>
{{end}}</table>
{{if .PromoCode}}<p>Promo {{.PromoCode}} applied: -${{printf "%.2f" .Discount}}</p>{{end}}
<p>Booking fee: ${{printf "%.2f" .BookingFee}}<br>Tax: ${{printf "%.2f" .Tax}}</p>
<p><strong>Total paid: ${{printf "%.2f" .Total}}</strong></p>`))

var promoTmpl = template.Must(template.New("promo").Parse(`<h2>Hi {{.Name}},</h2>
<p>Use code <strong>{{.Code}}</strong> for {{.Percent}}% off your next booking.</p>
<p>Valid from {{.StartDate}} until {{.EndDate}}.</p>`))

func bookingConfirmationEmail(from string, b *entity.Booking, movieTitle string) (notify.Email, error) {
	var promo string
	if b.PromoCode != nil {
		promo = *b.PromoCode
	}

	data := struct {
		Name, OrderID, MovieTitle, Showroom, DateTime, PromoCode string
		Tickets                                                  []*entity.BookingTicket
		Discount, BookingFee, Tax, Total                         float64
	}{
		Name:       b.CustomerName,
		OrderID:    b.OrderID,
		MovieTitle: movieTitle,
		Showroom:   string(b.Showtime.Showroom),
		DateTime:   response.FormatDateTime(b.Showtime.StartsAt),
		PromoCode:  promo,
		Tickets:    b.Tickets,
		Discount:   b.Discount,
		BookingFee: b.BookingFee,
		Tax:        b.Tax,
		Total:      b.TotalPrice,
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return notify.Email{}, fmt.Errorf("render confirmation for %s: %w", b.OrderID, err)
	}

	return notify.Email{
		Kind:    notify.KindBookingConfirmation,
		From:    from,
		To:      b.CustomerEmail,
		ToName:  b.CustomerName,
		Subject: fmt.Sprintf("Booking confirmation %s: %s", b.OrderID, movieTitle),
		HTML:    buf.String(),
	}, nil
}

func promoEmail(from string, p *entity.PromoCode, sub *entity.PromoSubscriber) (notify.Email, error) {
	data := struct {
		Name, Code, StartDate, EndDate string
		Percent                        int
	}{
		Name:      sub.Name,
		Code:      p.Code,
		StartDate: p.StartDate.UTC().Format("Jan 2, 2006"),
		EndDate:   p.EndDate.UTC().Format("Jan 2, 2006"),
		Percent:   p.DiscountPercent,
	}

	var buf bytes.Buffer
	if err := promoTmpl.Execute(&buf, data); err != nil {
		return notify.Email{}, fmt.Errorf("render promo %s: %w", p.Code, err)
	}

	return notify.Email{
		Kind:    notify.KindPromo,
		From:    from,
		To:      sub.Email,
		ToName:  sub.Name,
		Subject: fmt.Sprintf("%d%% off with %s", p.DiscountPercent, p.Code),
		HTML:    buf.String(),
	}, nil
}
