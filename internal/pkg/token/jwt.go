package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Erros de validação de token. A assinatura é sempre verificada antes de
// qualquer claim ser confiada (inclusive a expiração), então um claim set
// forjado nunca chega ao ponto de ser avaliado.
var (
	ErrMalformed    = errors.New("token malformado")
	ErrBadSignature = errors.New("assinatura do token inválida")
	ErrExpired      = errors.New("token expirado")
)

// TokenService define o contrato para emissão e validação de JWTs.
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims define as informações específicas armazenadas no JWT.
// É obrigatório incorporar jwt.RegisteredClaims.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service implementa a interface TokenService.
// A chave secreta é imutável após a construção; o serviço não possui nenhum
// outro estado compartilhado, então emissão e validação são concorrentes sem
// coordenação.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
// A chave vem da configuração carregada no startup do processo e vale até o
// processo encerrar; rotacioná-la invalida todos os tokens emitidos.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um novo JWT assinado contendo o ID e a Role do usuário.
// O token carrega iat e exp (exp = agora + expiry): tokens sem prazo não são
// emitidos.
func (s *Service) GenerateToken(userID string, userRole string) (string, error) {
	issuedAt := s.now()

	claims := CustomClaims{
		UserID: userID,
		Role:   userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    "EduPosts-API",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida o token string e retorna as claims se for válido.
// Falhas são classificadas em ErrMalformed, ErrBadSignature ou ErrExpired;
// o chamador decide quanto disso expõe externamente.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verifica se o método de assinatura é o esperado (HMAC/HS256).
		// Rejeitar aqui fecha o ataque de confusão de algoritmo.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		default:
			// Keyfunc rejeitou o algoritmo ou outra falha de parsing.
			return nil, ErrBadSignature
		}
	}

	if !token.Valid {
		return nil, ErrBadSignature
	}

	return claims, nil
}
