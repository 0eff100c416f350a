package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_NFC(t *testing.T) {
	composed := "Jos\u00e9"
	decomposed := "Jose\u0301"
	assert.Equal(t, Name(composed), Name("  "+decomposed+" "))
	assert.Equal(t, 4, Len(Name(decomposed)))
}

func TestEmail_Minusculas(t *testing.T) {
	assert.Equal(t, "ana@exemplo.com", Email(" Ana@Exemplo.COM "))
}
