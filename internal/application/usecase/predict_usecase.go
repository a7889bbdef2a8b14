package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/churn-predictor-api/internal/application/dto"
	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
	"github.com/jhoicas/churn-predictor-api/internal/domain"
	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
	"github.com/jhoicas/churn-predictor-api/internal/domain/entity"
	"github.com/jhoicas/churn-predictor-api/pkg/logger"
)

// Textos de la respuesta de predicción. El contrato del endpoint exige
// exactamente estos dos valores.
const (
	PredictionChurn   = "likely to churn"
	PredictionNoChurn = "not likely to churn"
)

// Mensajes fijos de respaldo cuando el servicio de generación falla: el
// cliente siempre recibe un texto utilizable.
const (
	fallbackRetention = "Valoramos mucho tu permanencia con nosotros. Contáctanos y te " +
		"presentaremos una oferta especial pensada para ti."
	fallbackThanks = "Gracias por confiar en nosotros. Es un gusto tenerte como cliente " +
		"y seguiremos trabajando para ofrecerte el mejor servicio."
)

// Timeouts de las llamadas externas. Ninguna de las dos puede dejar la
// petición bloqueada indefinidamente.
const (
	generateTimeout = 10 * time.Second
	deliverTimeout  = 15 * time.Second
)

// PredictUseCase orquesta el ciclo completo de una predicción:
// validación → preparación de características → inferencia → redacción del
// mensaje → entrega por correo → armado de la respuesta.
// Los fallos de redacción o entrega nunca enmascaran una predicción válida;
// solo la validación y la inferencia pueden tumbar la petición.
type PredictUseCase struct {
	model     *churn.LogisticModel
	preparer  *churn.Preparer
	generator ports.MessageGenerator
	mailer    ports.MailSender
	log       *logger.Logger
}

// NewPredictUseCase construye el caso de uso inyectando el modelo cargado,
// el preparador y los puertos de generación y correo.
func NewPredictUseCase(
	model *churn.LogisticModel,
	preparer *churn.Preparer,
	generator ports.MessageGenerator,
	mailer ports.MailSender,
	log *logger.Logger,
) *PredictUseCase {
	return &PredictUseCase{
		model:     model,
		preparer:  preparer,
		generator: generator,
		mailer:    mailer,
		log:       log,
	}
}

// Predict ejecuta una predicción de churn para un cliente.
// Devuelve error solo ante entrada inválida o fallo de inferencia; los fallos
// de generación y entrega se reflejan dentro de la respuesta.
func (uc *PredictUseCase) Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictResponse, error) {
	if req.Email == "" {
		return nil, domain.ErrMissingEmail
	}

	rec := req.ToRecord()

	features, subs, err := uc.preparer.Prepare(rec)
	if err != nil {
		return nil, fmt.Errorf("preparar características: %w", err)
	}
	for _, s := range subs {
		uc.log.Warn().
			Str("field", s.Field).
			Str("unknown", s.Unknown).
			Str("fallback", s.Fallback).
			Int("index", s.Index).
			Msg("categoría desconocida sustituida por la primera clase del codificador")
	}

	proba, err := uc.model.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("inferencia: %w", err)
	}
	label, err := uc.model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("inferencia: %w", err)
	}
	willChurn := label == churn.LabelChurn

	body := uc.composeMessage(ctx, rec, willChurn)
	status := uc.deliver(ctx, req.Email, willChurn, body)

	prediction := PredictionNoChurn
	if willChurn {
		prediction = PredictionChurn
	}

	return &dto.PredictResponse{
		Success:       true,
		Prediction:    prediction,
		Probability:   fmt.Sprintf("%.2f%%", proba*100),
		EmailStatus:   status,
		CustomerEmail: req.Email,
		Debug: dto.PredictDebug{
			Input:         rec.AsMap(),
			Features:      features,
			Probabilities: []float64{1 - proba, proba},
		},
	}, nil
}

// composeMessage pide el texto al generador y, ante cualquier fallo (timeout,
// cuota, respuesta malformada), cae al mensaje fijo según el resultado.
// Nunca devuelve texto vacío.
func (uc *PredictUseCase) composeMessage(ctx context.Context, rec entity.CustomerRecord, willChurn bool) string {
	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := uc.generator.GenerateMessage(genCtx, ports.NotificationInput{
		MonthlyCharges:  rec.MonthlyCharges,
		TenureMonths:    rec.Tenure,
		InternetService: rec.InternetService,
		WillChurn:       willChurn,
	})
	if err == nil && text != "" {
		return text
	}
	uc.log.Warn().Err(err).Bool("churn", willChurn).
		Msg("generación de mensaje fallida, usando texto de respaldo")

	if willChurn {
		return fallbackRetention
	}
	return fallbackThanks
}

// deliver envía el mensaje al cliente y devuelve el resultado estructurado.
// Un fallo de entrega es parcial: no tumba la petición.
func (uc *PredictUseCase) deliver(ctx context.Context, email string, willChurn bool, body string) dto.EmailStatus {
	subject := "¡Gracias por confiar en nosotros!"
	if willChurn {
		subject = "Tenemos una oferta especial para ti"
	}

	mailCtx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	err := uc.mailer.Send(mailCtx, ports.OutboundEmail{
		To:      email,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("to", email).Msg("entrega de correo fallida")
		return dto.EmailStatus{
			Success: false,
			Message: fmt.Sprintf("no se pudo enviar el correo: %v", err),
		}
	}
	return dto.EmailStatus{
		Success: true,
		Message: fmt.Sprintf("correo enviado a %s", email),
	}
}
