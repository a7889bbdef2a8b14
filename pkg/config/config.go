package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Artifacts ArtifactsConfig
	AI        AIConfig
	SMTP      SMTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ArtifactsConfig rutas de los artefactos binarios del entrenamiento.
// Ambos se cargan una sola vez al arrancar; si alguno no se puede leer el
// proceso no debe servir peticiones.
type ArtifactsConfig struct {
	ModelPath    string
	EncodersPath string
}

// AIConfig configuración del servicio de generación de texto.
// Si GeminiAPIKey está vacío el arranque continúa; las llamadas de generación
// fallan con error descriptivo y el caso de uso usa el texto de respaldo.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// SMTPConfig cuenta y relay para la entrega de correo.
type SMTPConfig struct {
	Host     string
	Port     int
	Address  string // cuenta remitente (MAIL_ADDRESS)
	Password string // contraseña de aplicación (MAIL_PASSWORD)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, MODEL_PATH, GEMINI_API_KEY, MAIL_ADDRESS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "churn-predictor"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Artifacts: ArtifactsConfig{
			ModelPath:    getString(v, "MODEL_PATH", "artifacts/customer_churn_model.gob"),
			EncodersPath: getString(v, "ENCODERS_PATH", "artifacts/encoders.gob"),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 587),
			Address:  getString(v, "MAIL_ADDRESS", ""),
			Password: getString(v, "MAIL_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
