package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/churn-predictor-api/internal/application/usecase"
	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PredictUC *usecase.PredictUseCase
	Encoders  churn.EncoderTable
}

// Router registra las rutas del servicio.
func Router(app *fiber.App, deps RouterDeps) error {
	app.Use(RequestID())

	homeHandler, err := NewHomeHandler(deps.Encoders)
	if err != nil {
		return err
	}
	app.Get("/", homeHandler.Render)

	predictHandler := NewPredictHandler(deps.PredictUC)
	app.Post("/predict", predictHandler.Predict)

	return nil
}
