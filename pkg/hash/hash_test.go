package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	hashed, err := h.Hash("segredo1")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo1", hashed)
	assert.True(t, h.Verify("segredo1", hashed))
	assert.False(t, h.Verify("segredo2", hashed))
}

func TestBcrypt_HashMalformadoEsFalso(t *testing.T) {
	h := New(bcrypt.MinCost)
	assert.False(t, h.Verify("x", ""))
	assert.False(t, h.Verify("x", "not-a-hash"))
}

func TestBcrypt_DummyHashEsValido(t *testing.T) {
	_, err := bcrypt.Cost([]byte(dummyHash))
	require.NoError(t, err)
	New(bcrypt.MinCost).VerifyDummy("qualquer")
}

func TestBcrypt_PasswordLarga(t *testing.T) {
	_, err := New(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
