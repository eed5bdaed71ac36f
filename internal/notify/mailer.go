package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hairday/salon-booking/internal/timeutil"
)

type Sender interface {
	Send(to string, subject string, body string) error
}

// SMTPSender sends mail via unauthenticated SMTP (Mailpit-compatible in
// development, a real relay in production).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@salon.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

// BookingConfirmation renders the mail sent after a successful booking.
func BookingConfirmation(date string, start, end timeutil.TimeOfDay, services []string) (subject, body string) {
	subject = "Booking Confirmation"
	body = fmt.Sprintf(
		"Your booking is confirmed!\nDate: %s\nTime: %s to %s\nServices: %s\n",
		date,
		start.Format(),
		end.Format(),
		strings.Join(services, ", "),
	)
	return subject, body
}
