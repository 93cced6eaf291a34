package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService cria um serviço de token com relógio fixo para os testes.
func newTestService(secret string, expiry time.Duration, now time.Time) *Service {
	svc := NewService(secret, expiry)
	svc.now = func() time.Time { return now }
	return svc
}

// TestGenerateAndValidate_RoundTrip garante que emitir e validar um token
// dentro do prazo devolve o ID e a role originais, sem alterações.
func TestGenerateAndValidate_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("chave-de-teste", time.Hour, issuedAt)

	tokenString, err := svc.GenerateToken("user-123", "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

// TestValidateToken_Expired garante que um token com assinatura válida, mas
// fora do prazo, é rejeitado com ErrExpired.
func TestValidateToken_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("chave-de-teste", time.Hour, issuedAt)

	tokenString, err := svc.GenerateToken("user-123", "student")
	require.NoError(t, err)

	// Avança o relógio para além do exp.
	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	claims, err := svc.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrExpired)
	assert.Nil(t, claims)
}

// TestValidateToken_TamperedSignature garante que qualquer alteração no
// segmento de assinatura rejeita o token sem devolver claims.
func TestValidateToken_TamperedSignature(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("chave-de-teste", time.Hour, issuedAt)

	tokenString, err := svc.GenerateToken("user-123", "teacher")
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.ValidateToken(tampered)

	assert.ErrorIs(t, err, ErrBadSignature)
	assert.Nil(t, claims)
}

// TestValidateToken_TamperedClaims garante que alterar as claims invalida a
// assinatura: a expiração forjada nunca chega a ser avaliada.
func TestValidateToken_TamperedClaims(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("chave-de-teste", time.Hour, issuedAt)

	tokenString, err := svc.GenerateToken("user-123", "student")
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	body := []byte(parts[1])
	if body[0] == 'A' {
		body[0] = 'B'
	} else {
		body[0] = 'A'
	}
	tampered := parts[0] + "." + string(body) + "." + parts[2]

	claims, err := svc.ValidateToken(tampered)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestValidateToken_Malformed garante que uma string sem o formato de token
// é rejeitada com ErrMalformed.
func TestValidateToken_Malformed(t *testing.T) {
	svc := NewService("chave-de-teste", time.Hour)

	claims, err := svc.ValidateToken("isto-nao-e-um-token")

	assert.ErrorIs(t, err, ErrMalformed)
	assert.Nil(t, claims)
}

// TestValidateToken_WrongKey garante que um token assinado com outra chave
// é rejeitado como assinatura inválida.
func TestValidateToken_WrongKey(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestService("outra-chave", time.Hour, issuedAt)
	verifier := newTestService("chave-de-teste", time.Hour, issuedAt)

	tokenString, err := issuer.GenerateToken("user-123", "teacher")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrBadSignature)
	assert.Nil(t, claims)
}
