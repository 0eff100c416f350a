package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de creación: solo el id generado.
type IDResponse struct {
	ID int64 `json:"id"`
}

// MessageResponse respuesta con mensaje simple ({"msg": "..."}).
type MessageResponse struct {
	Msg string `json:"msg"`
}
