package dto

// ErrorResponse cuerpo de error HTTP. El cliente muestra Message tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (ej. borrado de una oferta).
type MessageResponse struct {
	Msg string `json:"msg"`
}
