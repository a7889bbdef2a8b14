package churn

import (
	"fmt"

	"github.com/jhoicas/churn-predictor-api/internal/domain"
)

// LabelEncoder es un codificador categórico ajustado durante el entrenamiento.
// Classes es el conjunto cerrado y ordenado de etiquetas conocidas; el índice
// de cada etiqueta es su posición en la lista y queda fijado al entrenar.
type LabelEncoder struct {
	Classes []string
}

// Transform devuelve el índice entero de la etiqueta.
// Si la etiqueta no pertenece al conjunto conocido devuelve ErrUnknownCategory.
func (e *LabelEncoder) Transform(label string) (int, error) {
	for i, c := range e.Classes {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, label)
}

// First devuelve la primera clase conocida (índice 0), usada como sustituto
// definido ante valores fuera del conjunto.
func (e *LabelEncoder) First() string {
	if len(e.Classes) == 0 {
		return ""
	}
	return e.Classes[0]
}

// EncoderTable mapea nombre de campo → codificador categórico.
// Se carga una vez al arrancar y es de solo lectura: las lecturas
// concurrentes desde los handlers son seguras sin locks.
type EncoderTable map[string]*LabelEncoder
