// Package artifact lee los artefactos binarios producidos por el pipeline de
// entrenamiento: el bundle del modelo y la tabla de codificadores categóricos.
// Ambos se deserializan una sola vez al arrancar el proceso; si alguno no se
// puede leer, el arranque debe fallar (no se sirve con un modelo nulo).
package artifact

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/churn-predictor-api/internal/domain"
	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
)

// ModelBundle es el objeto compuesto que envuelve al modelo real.
// El artefacto no es invocable directamente: el clasificador hay que
// desenvolverlo del campo Model, igual que los metadatos de entrenamiento.
type ModelBundle struct {
	Model        *churn.LogisticModel
	FeatureNames []string
	TrainedAt    time.Time
	Version      string
}

// LoadModelBundle deserializa el artefacto del modelo y valida que contenga
// un clasificador utilizable.
func LoadModelBundle(path string) (*ModelBundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir artefacto de modelo %s: %w", path, err)
	}
	defer f.Close()

	var bundle ModelBundle
	if err := gob.NewDecoder(f).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("decodificar artefacto de modelo %s: %w", path, err)
	}
	if bundle.Model == nil || bundle.Model.NumFeatures() == 0 {
		return nil, fmt.Errorf("%w: el bundle %s no contiene modelo", domain.ErrBadArtifact, path)
	}
	if len(bundle.FeatureNames) > 0 && len(bundle.FeatureNames) != bundle.Model.NumFeatures() {
		return nil, fmt.Errorf("%w: %d nombres de característica para un modelo de %d entradas",
			domain.ErrBadArtifact, len(bundle.FeatureNames), bundle.Model.NumFeatures())
	}
	return &bundle, nil
}

// LoadEncoders deserializa la tabla de codificadores categóricos.
func LoadEncoders(path string) (churn.EncoderTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir artefacto de codificadores %s: %w", path, err)
	}
	defer f.Close()

	var table churn.EncoderTable
	if err := gob.NewDecoder(f).Decode(&table); err != nil {
		return nil, fmt.Errorf("decodificar codificadores %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: tabla de codificadores vacía en %s", domain.ErrBadArtifact, path)
	}
	for field, enc := range table {
		if enc == nil || len(enc.Classes) == 0 {
			return nil, fmt.Errorf("%w: codificador de %s sin clases", domain.ErrBadArtifact, field)
		}
	}
	return table, nil
}

// SaveModelBundle serializa un bundle con gob. Lo usa cmd/artifacts para
// convertir parámetros exportados del entrenamiento al formato binario.
func SaveModelBundle(path string, bundle *ModelBundle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear artefacto de modelo %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(bundle); err != nil {
		return fmt.Errorf("codificar artefacto de modelo: %w", err)
	}
	return nil
}

// SaveEncoders serializa la tabla de codificadores con gob.
func SaveEncoders(path string, table churn.EncoderTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear artefacto de codificadores %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(table); err != nil {
		return fmt.Errorf("codificar codificadores: %w", err)
	}
	return nil
}
