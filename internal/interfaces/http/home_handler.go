package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
	"github.com/jhoicas/churn-predictor-api/internal/domain/entity"
)

//go:embed templates/index.html
var templatesFS embed.FS

// HomeHandler sirve el formulario HTML de predicción.
type HomeHandler struct {
	tmpl     *template.Template
	encoders churn.EncoderTable
}

// NewHomeHandler construye el handler. El template se parsea una sola vez;
// las opciones de los selects salen de las clases de los codificadores, de
// modo que el formulario solo ofrece categorías que el modelo conoce.
func NewHomeHandler(encoders churn.EncoderTable) (*HomeHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &HomeHandler{tmpl: tmpl, encoders: encoders}, nil
}

// homeField es un campo categórico del formulario con sus opciones.
type homeField struct {
	Name    string
	Options []string
}

// Render GET /
func (h *HomeHandler) Render(c *fiber.Ctx) error {
	var fields []homeField
	for _, name := range entity.FeatureOrder {
		if enc, ok := h.encoders[name]; ok {
			fields = append(fields, homeField{Name: name, Options: enc.Classes})
		}
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, fiber.Map{"Fields": fields}); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
