package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/churn-predictor-api/internal/application/dto"
	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
	"github.com/jhoicas/churn-predictor-api/internal/application/usecase"
	"github.com/jhoicas/churn-predictor-api/internal/domain"
	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
	"github.com/jhoicas/churn-predictor-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos (sin red)
// ──────────────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateMessage(_ context.Context, _ ports.NotificationInput) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeMailer struct {
	err  error
	sent []ports.OutboundEmail
}

func (f *fakeMailer) Send(_ context.Context, msg ports.OutboundEmail) error {
	f.sent = append(f.sent, msg)
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testEncoders() churn.EncoderTable {
	yesNo := []string{"No", "Yes"}
	internetDep := []string{"No", "No internet service", "Yes"}
	return churn.EncoderTable{
		"gender":           {Classes: []string{"Female", "Male"}},
		"Partner":          {Classes: yesNo},
		"Dependents":       {Classes: yesNo},
		"PhoneService":     {Classes: yesNo},
		"MultipleLines":    {Classes: []string{"No", "No phone service", "Yes"}},
		"InternetService":  {Classes: []string{"DSL", "Fiber optic", "No"}},
		"OnlineSecurity":   {Classes: internetDep},
		"OnlineBackup":     {Classes: internetDep},
		"DeviceProtection": {Classes: internetDep},
		"TechSupport":      {Classes: internetDep},
		"StreamingTV":      {Classes: internetDep},
		"StreamingMovies":  {Classes: internetDep},
		"Contract":         {Classes: []string{"Month-to-month", "One year", "Two year"}},
		"PaperlessBilling": {Classes: yesNo},
		"PaymentMethod": {Classes: []string{
			"Bank transfer (automatic)", "Credit card (automatic)",
			"Electronic check", "Mailed check",
		}},
	}
}

// churnModel devuelve un modelo cuyo intercepto fuerza el resultado.
func churnModel(intercept float64) *churn.LogisticModel {
	return &churn.LogisticModel{
		Weights:   make([]float64, 19),
		Intercept: intercept,
	}
}

func testRequest() dto.PredictRequest {
	return dto.PredictRequest{
		Gender:           "Female",
		SeniorCitizen:    0,
		Partner:          "Yes",
		Dependents:       "No",
		Tenure:           1,
		PhoneService:     "No",
		MultipleLines:    "No phone service",
		InternetService:  "DSL",
		OnlineSecurity:   "No",
		OnlineBackup:     "Yes",
		DeviceProtection: "No",
		TechSupport:      "No",
		StreamingTV:      "No",
		StreamingMovies:  "No",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   decimal.NewFromFloat(29.85),
		TotalCharges:     decimal.NewFromFloat(29.85),
		Email:            "a@b.com",
	}
}

func buildUseCase(model *churn.LogisticModel, gen *fakeGenerator, mail *fakeMailer) *usecase.PredictUseCase {
	preparer := churn.NewPreparer(testEncoders(), churn.PreparerOptions{})
	return usecase.NewPredictUseCase(model, preparer, gen, mail, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: email ausente → ErrMissingEmail y la inferencia nunca corre.
func TestPredict_SinEmailNoInfiere(t *testing.T) {
	gen := &fakeGenerator{text: "hola"}
	mail := &fakeMailer{}
	uc := buildUseCase(churnModel(5), gen, mail)

	req := testRequest()
	req.Email = ""

	_, err := uc.Predict(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingEmail))
	assert.Zero(t, gen.calls, "la generación no debe invocarse sin email")
	assert.Empty(t, mail.sent, "el correo no debe enviarse sin email")
}

// Caso 2: flujo completo con churn predicho → respuesta estructurada con
// predicción, probabilidad en porcentaje y estado de correo exitoso.
func TestPredict_FlujoCompletoChurn(t *testing.T) {
	gen := &fakeGenerator{text: "mensaje de retención generado"}
	mail := &fakeMailer{}
	uc := buildUseCase(churnModel(5), gen, mail)

	resp, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, usecase.PredictionChurn, resp.Prediction)
	assert.Regexp(t, `^\d+\.\d{2}%$`, resp.Probability)
	assert.Equal(t, "a@b.com", resp.CustomerEmail)
	assert.True(t, resp.EmailStatus.Success)
	assert.NotEmpty(t, resp.EmailStatus.Message)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "a@b.com", mail.sent[0].To)
	assert.Equal(t, "mensaje de retención generado", mail.sent[0].Body)
	assert.Contains(t, mail.sent[0].Subject, "oferta", "el asunto de churn debe ser de retención")

	// Ecos de depuración
	assert.Len(t, resp.Debug.Features, 19)
	require.Len(t, resp.Debug.Probabilities, 2)
	assert.InDelta(t, 1.0, resp.Debug.Probabilities[0]+resp.Debug.Probabilities[1], 1e-9)
	assert.Equal(t, 29.85, resp.Debug.Input["MonthlyCharges"], "el debug debe ser JSON-safe")
}

// Caso 3: sin churn → agradecimiento.
func TestPredict_SinChurnAgradece(t *testing.T) {
	gen := &fakeGenerator{text: "gracias por quedarte"}
	mail := &fakeMailer{}
	uc := buildUseCase(churnModel(-5), gen, mail)

	resp, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, usecase.PredictionNoChurn, resp.Prediction)
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].Subject, "Gracias")
}

// Caso 4: el generador falla → texto de respaldo, el envío se intenta igual y
// la petición completa sigue siendo exitosa.
func TestPredict_GeneradorCaidoUsaRespaldo(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("cuota agotada")}
	mail := &fakeMailer{}
	uc := buildUseCase(churnModel(5), gen, mail)

	resp, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, mail.sent, 1)
	assert.NotEmpty(t, mail.sent[0].Body, "el caller siempre recibe texto utilizable")
}

// Caso 5: la entrega falla → fallo parcial; la predicción sigue presente y
// email_status lo refleja con mensaje no vacío.
func TestPredict_EntregaFallidaEsParcial(t *testing.T) {
	gen := &fakeGenerator{text: "mensaje"}
	mail := &fakeMailer{err: errors.New("credenciales inválidas")}
	uc := buildUseCase(churnModel(5), gen, mail)

	resp, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err, "un fallo de correo no tumba la petición")

	assert.Equal(t, usecase.PredictionChurn, resp.Prediction)
	assert.False(t, resp.EmailStatus.Success)
	assert.NotEmpty(t, resp.EmailStatus.Message)
	assert.Contains(t, resp.EmailStatus.Message, "credenciales inválidas")
}

// Caso 6: campo categórico vacío en modo estricto → error de validación.
func TestPredict_CampoAusente(t *testing.T) {
	uc := buildUseCase(churnModel(5), &fakeGenerator{text: "x"}, &fakeMailer{})

	req := testRequest()
	req.PaymentMethod = ""

	_, err := uc.Predict(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingField))
}

// Caso 7: misma entrada dos veces → misma predicción (idempotencia).
func TestPredict_Deterministico(t *testing.T) {
	uc := buildUseCase(churnModel(1.5), &fakeGenerator{text: "x"}, &fakeMailer{})

	r1, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err)
	r2, err := uc.Predict(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, r1.Prediction, r2.Prediction)
	assert.Equal(t, r1.Probability, r2.Probability)
	assert.Equal(t, r1.Debug.Features, r2.Debug.Features)
}
