// Package mail implementa la entrega de correo sobre un relay SMTP
// autenticado usando gomail.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GomailSender implementa MailSender.
var _ ports.MailSender = (*GomailSender)(nil)

// GomailSender envía un mensaje por conexión SMTP autenticada y cifrada
// (STARTTLS), una conexión por envío. gomail no acepta context, así que el
// envío corre en una goroutine y el deadline se respeta con un select.
type GomailSender struct {
	dialer   *gomail.Dialer
	from     string
	password string
}

// NewGomailSender construye el agente de entrega. Si from o password están
// vacíos, Send devuelve un error descriptivo: el secreto solo es obligatorio
// cuando se usa la función, no en el arranque.
func NewGomailSender(host string, port int, from, password string) *GomailSender {
	return &GomailSender{
		dialer:   gomail.NewDialer(host, port, from, password),
		from:     from,
		password: password,
	}
}

// Send entrega un único mensaje al cliente. El error resultante es un fallo
// parcial que el caso de uso convierte en email_status; nunca un panic.
func (s *GomailSender) Send(ctx context.Context, msg ports.OutboundEmail) error {
	if s.from == "" || s.password == "" {
		return fmt.Errorf("SMTP: cuenta de correo no configurada (MAIL_ADDRESS / MAIL_PASSWORD)")
	}
	if msg.To == "" {
		return fmt.Errorf("SMTP: destinatario vacío")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("SMTP: envío a %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("SMTP: envío cancelado por timeout: %w", ctx.Err())
	}
}
