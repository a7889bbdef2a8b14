package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// NotificationInput son los datos del cliente y el resultado de la inferencia
// que alimentan la redacción del mensaje.
type NotificationInput struct {
	MonthlyCharges  decimal.Decimal
	TenureMonths    int
	InternetService string
	// WillChurn decide el enfoque: oferta de retención si es true,
	// agradecimiento si es false.
	WillChurn bool
}

// MessageGenerator define el puerto de salida hacia el servicio de generación
// de texto. Cualquier adaptador (Gemini, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type MessageGenerator interface {
	GenerateMessage(ctx context.Context, in NotificationInput) (string, error)
}
