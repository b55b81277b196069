package services

import (
	"fmt"
	"html"
	"strings"

	"ice-cream-shop/models"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the shop's outgoing mail.
type Mailer interface {
	SendContactMessage(req models.ContactRequest) error
	SendOrderConfirmation(to string, confirmation models.OrderConfirmation, cart models.Cart) error
}

type EmailService struct {
	send  func(m ...*gomail.Message) error
	from  string
	inbox string
}

// NewEmailService sends through an SMTP server. inbox receives contact form
// messages.
func NewEmailService(host string, port int, user, pass, from, inbox string) *EmailService {
	dialer := gomail.NewDialer(host, port, user, pass)
	return &EmailService{send: dialer.DialAndSend, from: from, inbox: inbox}
}

func NewEmailServiceWithSender(sender gomail.Sender, from, inbox string) *EmailService {
	return &EmailService{
		send:  func(m ...*gomail.Message) error { return gomail.Send(sender, m...) },
		from:  from,
		inbox: inbox,
	}
}

func (s *EmailService) SendContactMessage(req models.ContactRequest) error {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "New message"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.inbox)
	m.SetHeader("Reply-To", req.Email)
	m.SetHeader("Subject", "Contact form: "+subject)
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s\n", req.Name, req.Email, req.Phone, req.Message))

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendOrderConfirmation(to string, confirmation models.OrderConfirmation, cart models.Cart) error {
	var rows strings.Builder
	for _, item := range cart.Items {
		fmt.Fprintf(&rows, "<tr><td>%dx %s</td><td>%s, %s</td><td>$%s</td></tr>\n",
			item.Quantity,
			html.EscapeString(item.Name),
			html.EscapeString(item.SizeName),
			html.EscapeString(item.ContainerName),
			item.LineTotal().StringFixed(CentPlaces),
		)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Sweet Dreams order")

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thanks for your order, %s!</h2>
    <table>
%s    </table>
    <p><strong>Total:</strong> $%s</p>
    <p>Order type: %s. We'll call you at %s when it's ready.</p>
</body>
</html>
`, html.EscapeString(confirmation.Name), rows.String(), confirmation.Total.StringFixed(CentPlaces),
		confirmation.OrderType, html.EscapeString(confirmation.Phone))
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
