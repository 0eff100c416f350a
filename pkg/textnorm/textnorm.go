// Package textnorm normaliza texto de entrada antes de validar o comparar.
package textnorm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Name recorta espacios y aplica NFC: "José" compuesto y descompuesto quedan iguales.
func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Email recorta, aplica NFC y pasa a minúsculas.
func Email(s string) string {
	return lower.String(Name(s))
}

// Len longitud en caracteres (runas), no en bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
