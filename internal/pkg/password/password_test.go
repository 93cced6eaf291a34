package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"eduposts/internal/pkg/password"
)

// TestHashAndVerify_RoundTrip garante que uma senha hasheada é verificável.
func TestHashAndVerify_RoundTrip(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("abcdef")

	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "abcdef", hashed)
	assert.True(t, hasher.Verify("abcdef", hashed))
}

// TestVerify_WrongPassword garante que uma senha incorreta retorna false, sem erro.
func TestVerify_WrongPassword(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("abcdef")

	assert.NoError(t, err)
	assert.False(t, hasher.Verify("123456", hashed))
}

// TestHash_SaltedOutputsDiffer garante que o salt é aleatório por chamada:
// a mesma senha produz hashes diferentes, ambos verificáveis.
func TestHash_SaltedOutputsDiffer(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("abcdef")
	assert.NoError(t, err)

	second, err := hasher.Hash("abcdef")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("abcdef", first))
	assert.True(t, hasher.Verify("abcdef", second))
}

// TestHash_EmptyPassword garante que senha vazia é rejeitada no hashing.
func TestHash_EmptyPassword(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
	assert.Empty(t, hashed)
}

// TestNewHasher_InvalidCost garante que custos fora dos limites caem no padrão.
func TestNewHasher_InvalidCost(t *testing.T) {
	hasher := password.NewHasher(99)

	hashed, err := hasher.Hash("abcdef")

	assert.NoError(t, err)
	assert.True(t, hasher.Verify("abcdef", hashed))
}
