package dto

// ErrorResponse cuerpo estándar de error del API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
