package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada uno corresponde a una clase de fallo que la capa HTTP traduce a un status.
var (
	ErrValidation      = errors.New("entrada inválida")       // 422
	ErrUnauthenticated = errors.New("não autenticado")        // 401
	ErrForbidden       = errors.New("acesso negado")          // 403
	ErrNotFound        = errors.New("recurso não encontrado") // 404
	ErrConflict        = errors.New("recurso duplicado")      // 400
	ErrUnavailable     = errors.New("serviço indisponível")   // 503
)

// Error asocia un mensaje visible para el cliente a una de las clases de arriba.
// errors.Is(err, domain.ErrConflict) sigue funcionando gracias a Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Validation, Unauthenticated, Forbidden, NotFound y Conflict construyen errores tipados.
func Validation(msg string) error      { return &Error{Kind: ErrValidation, Message: msg} }
func Unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Message: msg} }
func Forbidden(msg string) error       { return &Error{Kind: ErrForbidden, Message: msg} }
func NotFound(msg string) error        { return &Error{Kind: ErrNotFound, Message: msg} }
func Conflict(msg string) error        { return &Error{Kind: ErrConflict, Message: msg} }

// Message devuelve el mensaje visible de err: el de *Error si existe, si no el de la clase.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	for _, kind := range []error{ErrValidation, ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict, ErrUnavailable} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "erro interno"
}
