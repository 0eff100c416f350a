package usecase

import (
	"errors"
	"math"
	"net/mail"

	"github.com/shopspring/decimal"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/textnorm"
)

const maxNameLen = 200

// requiredText normaliza y exige un valor no vacío de hasta maxNameLen caracteres.
func requiredText(field, v string) (string, error) {
	v = textnorm.Name(v)
	if v == "" {
		return "", domain.Validation(field + " é obrigatório")
	}
	if textnorm.Len(v) > maxNameLen {
		return "", domain.Validation(field + " muito longo")
	}
	return v, nil
}

// validEmail normaliza a minúsculas y exige una dirección simple (sin nombre ni <>).
func validEmail(v string) (string, error) {
	v = textnorm.Email(v)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", domain.Validation("email inválido")
	}
	return v, nil
}

// Límites de las columnas produto.preco NUMERIC(12,2) y produto.estoque INTEGER.
const priceScale = 2

var maxPrice = decimal.New(1, 10)

// validPrice rechaza lo que la columna redondearía o no podría guardar.
func validPrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return domain.Validation("preco não pode ser negativo")
	case !p.Equal(p.Truncate(priceScale)):
		return domain.Validation("preco aceita no máximo 2 casas decimais")
	case p.GreaterThanOrEqual(maxPrice):
		return domain.Validation("preco excede o máximo permitido")
	}
	return nil
}

func validStock(n int) error {
	switch {
	case n < 0:
		return domain.Validation("estoque não pode ser negativo")
	case n > math.MaxInt32:
		return domain.Validation("estoque excede o máximo permitido")
	}
	return nil
}

// mapWriteErr traduce ErrConflict / ErrNotFound del repositorio a errores con mensaje.
// Errores que ya traen mensaje (*domain.Error) pasan sin cambios.
func mapWriteErr(err error, conflictMsg, notFoundMsg string) error {
	var de *domain.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return err
	case errors.Is(err, domain.ErrConflict):
		return domain.Conflict(conflictMsg)
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(notFoundMsg)
	default:
		return err
	}
}
