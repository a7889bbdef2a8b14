package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/churn-predictor-api/internal/application/dto"
	"github.com/jhoicas/churn-predictor-api/internal/application/usecase"
	"github.com/jhoicas/churn-predictor-api/internal/domain"
)

// PredictHandler maneja el endpoint de predicción de churn.
type PredictHandler struct {
	uc *usecase.PredictUseCase
}

// NewPredictHandler construye el handler.
func NewPredictHandler(uc *usecase.PredictUseCase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

// Predict godoc
// @Summary      Predecir churn de un cliente y notificarlo por correo
// @Description  Recibe los 19 atributos del cliente más su email, codifica las
//               categorías con los encoders del entrenamiento, evalúa el modelo
//               y envía un mensaje de retención o agradecimiento generado con IA.
//               Un fallo de generación o de correo no tumba la predicción.
// @Tags         churn
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.PredictRequest  true  "atributos del cliente + email (obligatorio)"
// @Success      200   {object}  dto.PredictResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.NewError("INVALID_BODY", "cuerpo de la petición inválido"))
	}

	resp, err := h.uc.Predict(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingEmail):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.NewError("MISSING_EMAIL", "el campo email es obligatorio"))
		case errors.Is(err, domain.ErrMissingField),
			errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrUnknownField):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.NewError("VALIDATION", err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.NewError("INTERNAL", err.Error()))
	}

	return c.JSON(resp)
}
