package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/churn-predictor-api/internal/domain/entity"
)

// PredictRequest entrada de POST /predict. Acepta cuerpo JSON o
// form-encoded; los nombres de campo son los del dataset de entrenamiento y
// no deben cambiarse.
type PredictRequest struct {
	Gender           string          `json:"gender" form:"gender"`
	SeniorCitizen    int             `json:"SeniorCitizen" form:"SeniorCitizen"`
	Partner          string          `json:"Partner" form:"Partner"`
	Dependents       string          `json:"Dependents" form:"Dependents"`
	Tenure           int             `json:"tenure" form:"tenure"`
	PhoneService     string          `json:"PhoneService" form:"PhoneService"`
	MultipleLines    string          `json:"MultipleLines" form:"MultipleLines"`
	InternetService  string          `json:"InternetService" form:"InternetService"`
	OnlineSecurity   string          `json:"OnlineSecurity" form:"OnlineSecurity"`
	OnlineBackup     string          `json:"OnlineBackup" form:"OnlineBackup"`
	DeviceProtection string          `json:"DeviceProtection" form:"DeviceProtection"`
	TechSupport      string          `json:"TechSupport" form:"TechSupport"`
	StreamingTV      string          `json:"StreamingTV" form:"StreamingTV"`
	StreamingMovies  string          `json:"StreamingMovies" form:"StreamingMovies"`
	Contract         string          `json:"Contract" form:"Contract"`
	PaperlessBilling string          `json:"PaperlessBilling" form:"PaperlessBilling"`
	PaymentMethod    string          `json:"PaymentMethod" form:"PaymentMethod"`
	MonthlyCharges   decimal.Decimal `json:"MonthlyCharges" form:"MonthlyCharges"`
	TotalCharges     decimal.Decimal `json:"TotalCharges" form:"TotalCharges"`
	Email            string          `json:"email" form:"email"`
}

// ToRecord convierte la petición al registro de dominio.
func (r PredictRequest) ToRecord() entity.CustomerRecord {
	return entity.CustomerRecord{
		Gender:           r.Gender,
		SeniorCitizen:    r.SeniorCitizen,
		Partner:          r.Partner,
		Dependents:       r.Dependents,
		Tenure:           r.Tenure,
		PhoneService:     r.PhoneService,
		MultipleLines:    r.MultipleLines,
		InternetService:  r.InternetService,
		OnlineSecurity:   r.OnlineSecurity,
		OnlineBackup:     r.OnlineBackup,
		DeviceProtection: r.DeviceProtection,
		TechSupport:      r.TechSupport,
		StreamingTV:      r.StreamingTV,
		StreamingMovies:  r.StreamingMovies,
		Contract:         r.Contract,
		PaperlessBilling: r.PaperlessBilling,
		PaymentMethod:    r.PaymentMethod,
		MonthlyCharges:   r.MonthlyCharges,
		TotalCharges:     r.TotalCharges,
		Email:            r.Email,
	}
}

// EmailStatus resultado estructurado del envío de correo. Un fallo aquí es
// parcial: la predicción sigue siendo válida y la petición responde 200.
type EmailStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PredictDebug ecos JSON-safe de la entrada, el vector final y las
// probabilidades crudas, para inspección desde el cliente.
type PredictDebug struct {
	Input         map[string]any `json:"input"`
	Features      []float64      `json:"features"`
	Probabilities []float64      `json:"probabilities"`
}

// PredictResponse salida de POST /predict.
type PredictResponse struct {
	Success       bool         `json:"success"`
	Prediction    string       `json:"prediction"`
	Probability   string       `json:"probability"`
	EmailStatus   EmailStatus  `json:"email_status"`
	CustomerEmail string       `json:"customer_email"`
	Debug         PredictDebug `json:"debug"`
}
