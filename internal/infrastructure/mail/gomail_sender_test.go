package mail_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
	"github.com/jhoicas/churn-predictor-api/internal/infrastructure/mail"
)

// Cuenta sin configurar → error descriptivo inmediato, sin tocar la red.
func TestGomailSender_SinCredenciales(t *testing.T) {
	s := mail.NewGomailSender("smtp.gmail.com", 587, "", "")

	err := s.Send(context.Background(), ports.OutboundEmail{
		To: "a@b.com", Subject: "x", Body: "y",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAIL_ADDRESS")
}

// Destinatario vacío → error antes de intentar la conexión.
func TestGomailSender_SinDestinatario(t *testing.T) {
	s := mail.NewGomailSender("smtp.gmail.com", 587, "cuenta@ejemplo.com", "secreto")

	err := s.Send(context.Background(), ports.OutboundEmail{Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destinatario")
}

// Contexto ya vencido → el envío se aborta con el error del contexto en lugar
// de dejar la petición bloqueada en el relay.
func TestGomailSender_ContextoVencido(t *testing.T) {
	// Dirección no enrutable (TEST-NET-3): la goroutine de envío queda
	// bloqueada conectando mientras el select observa el contexto cancelado.
	s := mail.NewGomailSender("203.0.113.1", 25, "cuenta@ejemplo.com", "secreto")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Send(ctx, ports.OutboundEmail{To: "a@b.com", Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
