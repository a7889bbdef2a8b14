// Comando artifacts convierte los parámetros exportados del pipeline de
// entrenamiento (un JSON con pesos, intercepto y clases por campo) a los dos
// artefactos binarios gob que lee el servidor al arrancar.
//
// Uso:
//
//	go run ./cmd/artifacts -params params.json -model artifacts/customer_churn_model.gob -encoders artifacts/encoders.gob
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
	"github.com/jhoicas/churn-predictor-api/internal/domain/entity"
	"github.com/jhoicas/churn-predictor-api/internal/infrastructure/artifact"
)

// trainedParams es el volcado JSON que produce el entrenamiento.
type trainedParams struct {
	Weights   []float64           `json:"weights"`
	Intercept float64             `json:"intercept"`
	Threshold float64             `json:"threshold"`
	Version   string              `json:"version"`
	Encoders  map[string][]string `json:"encoders"`
}

func main() {
	paramsPath := flag.String("params", "params.json", "JSON con los parámetros entrenados")
	modelPath := flag.String("model", "artifacts/customer_churn_model.gob", "ruta de salida del artefacto de modelo")
	encodersPath := flag.String("encoders", "artifacts/encoders.gob", "ruta de salida del artefacto de codificadores")
	flag.Parse()

	if err := run(*paramsPath, *modelPath, *encodersPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(paramsPath, modelPath, encodersPath string) error {
	raw, err := os.ReadFile(paramsPath)
	if err != nil {
		return fmt.Errorf("leer parámetros: %w", err)
	}

	var params trainedParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return fmt.Errorf("parsear parámetros: %w", err)
	}
	if len(params.Weights) != len(entity.FeatureOrder) {
		return fmt.Errorf("se esperaban %d pesos, hay %d", len(entity.FeatureOrder), len(params.Weights))
	}

	bundle := &artifact.ModelBundle{
		Model: &churn.LogisticModel{
			Weights:   params.Weights,
			Intercept: params.Intercept,
			Threshold: params.Threshold,
		},
		FeatureNames: entity.FeatureOrder,
		TrainedAt:    time.Now(),
		Version:      params.Version,
	}
	if err := artifact.SaveModelBundle(modelPath, bundle); err != nil {
		return err
	}

	table := make(churn.EncoderTable, len(params.Encoders))
	for field, classes := range params.Encoders {
		if len(classes) == 0 {
			return fmt.Errorf("el campo %s no tiene clases", field)
		}
		table[field] = &churn.LabelEncoder{Classes: classes}
	}
	if err := artifact.SaveEncoders(encodersPath, table); err != nil {
		return err
	}

	fmt.Printf("artefactos escritos: %s, %s\n", modelPath, encodersPath)
	return nil
}
