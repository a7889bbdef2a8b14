package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingEmail      = errors.New("el email del cliente es obligatorio")
	ErrMissingField      = errors.New("campo requerido ausente")
	ErrUnknownField      = errors.New("campo no reconocido")
	ErrUnknownCategory   = errors.New("categoría desconocida para el codificador")
	ErrModelNotLoaded    = errors.New("modelo de churn no cargado")
	ErrBadArtifact       = errors.New("artefacto de modelo inválido")
	ErrDimensionMismatch = errors.New("dimensión del vector no coincide con el modelo")
	ErrInvalidInput      = errors.New("entrada inválida")
)
