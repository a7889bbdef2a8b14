package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/churn-predictor-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa MessageGenerator.
var _ ports.MessageGenerator = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo y el tono del mensaje.
	// El texto va directo al correo del cliente: sin markdown, sin asuntos,
	// sin placeholders tipo [nombre].
	systemPrompt = `Eres el asistente de retención de una empresa de telecomunicaciones.
Escribe un correo breve y cálido en español dirigido a un cliente, en segunda persona.
Devuelve ÚNICAMENTE el cuerpo del mensaje: sin asunto, sin markdown, sin firmas genéricas
ni marcadores como [nombre]. Máximo 120 palabras.`
)

// GeminiService adaptador que implementa MessageGenerator llamando a la API
// REST de Google Gemini. Usa únicamente la librería estándar de Go (net/http)
// para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven un error descriptivo en lugar
// de fallar en el arranque: el secreto solo es obligatorio al usar la función.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateMessage llama a Gemini con los datos del cliente y el resultado de
// la inferencia y devuelve el cuerpo del correo de retención o agradecimiento.
func (s *GeminiService) GenerateMessage(ctx context.Context, in ports.NotificationInput) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: buildUserPrompt(in)}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7, // algo de variedad en la redacción, temperatura fija
			MaxOutputTokens: 256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	text := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió texto vacío")
	}
	return text, nil
}

// buildUserPrompt arma el prompt con el cargo mensual, la antigüedad y el
// servicio de internet del cliente, y el enfoque según el resultado.
func buildUserPrompt(in ports.NotificationInput) string {
	framing := "El modelo predice que el cliente NO tiene riesgo de abandono. " +
		"Escribe un mensaje de agradecimiento por su lealtad."
	if in.WillChurn {
		framing = "El modelo predice que el cliente tiene riesgo de abandono. " +
			"Escribe un mensaje de retención con una oferta atractiva y concreta."
	}
	return fmt.Sprintf(`Datos del cliente:
- Cargo mensual: $%s
- Antigüedad: %d meses
- Servicio de internet: %s

%s`, in.MonthlyCharges.StringFixed(2), in.TenureMonths, in.InternetService, framing)
}
