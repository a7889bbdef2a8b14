package dto

// ErrorResponse cuerpo de error HTTP. El contrato exige success:false junto
// con un código de error estable y un mensaje legible no vacío.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewError construye una respuesta de error.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: code, Message: message}
}
