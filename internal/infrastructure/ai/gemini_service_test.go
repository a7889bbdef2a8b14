package ai

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
)

// Sin API key el adaptador falla con error descriptivo, nunca con panic:
// el secreto solo es obligatorio al usar la función.
func TestGeminiService_SinAPIKey(t *testing.T) {
	svc := NewGeminiService("", "gemini-1.5-flash")

	_, err := svc.GenerateMessage(context.Background(), ports.NotificationInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

// El prompt incluye el cargo mensual, la antigüedad y el servicio de internet,
// y el enfoque cambia según el resultado de la inferencia.
func TestBuildUserPrompt(t *testing.T) {
	in := ports.NotificationInput{
		MonthlyCharges:  decimal.NewFromFloat(29.85),
		TenureMonths:    12,
		InternetService: "Fiber optic",
	}

	in.WillChurn = true
	retencion := buildUserPrompt(in)
	assert.Contains(t, retencion, "$29.85")
	assert.Contains(t, retencion, "12 meses")
	assert.Contains(t, retencion, "Fiber optic")
	assert.Contains(t, retencion, "retención")

	in.WillChurn = false
	agradecimiento := buildUserPrompt(in)
	assert.Contains(t, agradecimiento, "agradecimiento")
	assert.NotContains(t, agradecimiento, "retención")
}
