package churn

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/churn-predictor-api/internal/domain"
	"github.com/jhoicas/churn-predictor-api/internal/domain/entity"
)

// Substitution registra el reemplazo de una categoría desconocida por la
// primera clase del codificador. No es un error: es un fallback definido,
// pero debe ser observable (el caller lo registra en los logs).
type Substitution struct {
	Field    string
	Unknown  string
	Fallback string
	Index    int
}

// PreparerOptions controla la política del preparador de características.
type PreparerOptions struct {
	// AllowMissing hace tolerante la ausencia de campos categóricos: un
	// string vacío pasa al codificador y cae en el sustituto de índice 0.
	// En modo estricto (por defecto) un categórico vacío es ErrMissingField.
	AllowMissing bool
}

// Preparer convierte un CustomerRecord en el vector numérico de 19 posiciones
// que espera el modelo, aplicando los codificadores categóricos en el orden
// canónico de entity.FeatureOrder.
type Preparer struct {
	encoders EncoderTable
	opts     PreparerOptions
}

// NewPreparer construye el preparador con la tabla de codificadores cargada
// del artefacto de entrenamiento.
func NewPreparer(encoders EncoderTable, opts PreparerOptions) *Preparer {
	return &Preparer{encoders: encoders, opts: opts}
}

// Prepare ensambla el vector de características en el orden canónico.
// Devuelve además las sustituciones aplicadas sobre categorías desconocidas.
func (p *Preparer) Prepare(rec entity.CustomerRecord) ([]float64, []Substitution, error) {
	features := make([]float64, 0, len(entity.FeatureOrder))
	var subs []Substitution

	for _, field := range entity.FeatureOrder {
		raw, ok := rec.RawValue(field)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownField, field)
		}

		if enc, encoded := p.encoders[field]; encoded {
			label, isStr := raw.(string)
			if !isStr {
				return nil, nil, fmt.Errorf("%w: %s debe ser texto", domain.ErrInvalidInput, field)
			}
			if label == "" && !p.opts.AllowMissing {
				return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingField, field)
			}
			idx, err := enc.Transform(label)
			if err != nil {
				if !errors.Is(err, domain.ErrUnknownCategory) {
					return nil, nil, err
				}
				// Fallback definido: sustituir por la primera clase conocida.
				fallback := enc.First()
				idx, err = enc.Transform(fallback)
				if err != nil {
					return nil, nil, fmt.Errorf("codificador de %s sin clases: %w", field, err)
				}
				subs = append(subs, Substitution{
					Field:    field,
					Unknown:  label,
					Fallback: fallback,
					Index:    idx,
				})
			}
			features = append(features, float64(idx))
			continue
		}

		v, err := numericValue(field, raw)
		if err != nil {
			return nil, nil, err
		}
		features = append(features, v)
	}

	return features, subs, nil
}

// numericValue coacciona un campo sin codificador a float64.
func numericValue(field string, raw any) (float64, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	}
	return 0, fmt.Errorf("%w: %s no es numérico", domain.ErrInvalidInput, field)
}
