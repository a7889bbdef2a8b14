package entity

import "github.com/shopspring/decimal"

// FeatureOrder es el orden canónico de las 19 características que espera el
// modelo. El modelo no conoce nombres de campo, solo posiciones: reordenar
// esta lista corrompe las predicciones en silencio.
var FeatureOrder = []string{
	"gender", "SeniorCitizen", "Partner", "Dependents", "tenure",
	"PhoneService", "MultipleLines", "InternetService", "OnlineSecurity",
	"OnlineBackup", "DeviceProtection", "TechSupport", "StreamingTV",
	"StreamingMovies", "Contract", "PaperlessBilling", "PaymentMethod",
	"MonthlyCharges", "TotalCharges",
}

// CustomerRecord representa los atributos de un cliente para una sola
// predicción. Se construye a partir de la petición HTTP, se consume de
// inmediato y no se persiste.
type CustomerRecord struct {
	Gender           string
	SeniorCitizen    int
	Partner          string
	Dependents       string
	Tenure           int
	PhoneService     string
	MultipleLines    string
	InternetService  string
	OnlineSecurity   string
	OnlineBackup     string
	DeviceProtection string
	TechSupport      string
	StreamingTV      string
	StreamingMovies  string
	Contract         string
	PaperlessBilling string
	PaymentMethod    string
	MonthlyCharges   decimal.Decimal
	TotalCharges     decimal.Decimal

	// Email es el contacto del cliente; no forma parte del vector de
	// características.
	Email string
}

// RawValue devuelve el valor crudo del campo por su nombre canónico.
// El segundo retorno indica si el campo existe.
func (r CustomerRecord) RawValue(field string) (any, bool) {
	switch field {
	case "gender":
		return r.Gender, true
	case "SeniorCitizen":
		return r.SeniorCitizen, true
	case "Partner":
		return r.Partner, true
	case "Dependents":
		return r.Dependents, true
	case "tenure":
		return r.Tenure, true
	case "PhoneService":
		return r.PhoneService, true
	case "MultipleLines":
		return r.MultipleLines, true
	case "InternetService":
		return r.InternetService, true
	case "OnlineSecurity":
		return r.OnlineSecurity, true
	case "OnlineBackup":
		return r.OnlineBackup, true
	case "DeviceProtection":
		return r.DeviceProtection, true
	case "TechSupport":
		return r.TechSupport, true
	case "StreamingTV":
		return r.StreamingTV, true
	case "StreamingMovies":
		return r.StreamingMovies, true
	case "Contract":
		return r.Contract, true
	case "PaperlessBilling":
		return r.PaperlessBilling, true
	case "PaymentMethod":
		return r.PaymentMethod, true
	case "MonthlyCharges":
		return r.MonthlyCharges, true
	case "TotalCharges":
		return r.TotalCharges, true
	}
	return nil, false
}

// AsMap devuelve los 19 campos como mapa nombre → valor crudo, en tipos
// aptos para serializar en la sección debug de la respuesta.
func (r CustomerRecord) AsMap() map[string]any {
	out := make(map[string]any, len(FeatureOrder))
	for _, f := range FeatureOrder {
		v, _ := r.RawValue(f)
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		out[f] = v
	}
	return out
}
