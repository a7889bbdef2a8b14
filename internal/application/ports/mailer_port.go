package ports

import "context"

// OutboundEmail es el mensaje a entregar al cliente.
type OutboundEmail struct {
	To      string
	Subject string
	Body    string
}

// MailSender define el puerto de salida hacia el relay de correo.
// Un error de envío es un fallo parcial: el caso de uso lo convierte en un
// email_status estructurado y nunca tumba la petición completa.
type MailSender interface {
	Send(ctx context.Context, msg OutboundEmail) error
}
