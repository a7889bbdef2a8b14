package churn

import (
	"fmt"
	"math"

	"github.com/jhoicas/churn-predictor-api/internal/domain"
)

// Etiquetas de salida del clasificador binario.
const (
	LabelNoChurn = 0
	LabelChurn   = 1
)

// LogisticModel es un clasificador de regresión logística pre-entrenado.
// Los pesos y el intercepto se ajustan fuera de este repositorio y llegan
// como artefacto binario; aquí solo se evalúa.
type LogisticModel struct {
	Weights   []float64
	Intercept float64
	// Threshold umbral de decisión sobre P(churn); si es <= 0 se usa 0.5.
	Threshold float64
}

// NumFeatures devuelve la dimensión de entrada que espera el modelo.
func (m *LogisticModel) NumFeatures() int {
	return len(m.Weights)
}

// PredictProba devuelve P(churn) para un vector de características.
// Misma entrada ⇒ misma salida: la evaluación es determinista.
func (m *LogisticModel) PredictProba(features []float64) (float64, error) {
	if m == nil || len(m.Weights) == 0 {
		return 0, domain.ErrModelNotLoaded
	}
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("%w: esperaba %d, recibió %d",
			domain.ErrDimensionMismatch, len(m.Weights), len(features))
	}
	z := m.Intercept
	for i, w := range m.Weights {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

// Predict devuelve la etiqueta binaria (LabelChurn / LabelNoChurn).
func (m *LogisticModel) Predict(features []float64) (int, error) {
	p, err := m.PredictProba(features)
	if err != nil {
		return 0, err
	}
	threshold := m.Threshold
	if threshold <= 0 {
		threshold = 0.5
	}
	if p >= threshold {
		return LabelChurn, nil
	}
	return LabelNoChurn, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
