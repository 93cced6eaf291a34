package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/token"
)

// ContextKey é o tipo usado para chaves de contexto deste pacote.
// Um tipo próprio garante que a chave seja única e não conflite com
// chaves string de outros pacotes.
type ContextKey int

const (
	// UserClaimsKey é a chave usada para armazenar as claims do usuário no contexto.
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados do usuário extraídos do token JWT,
// anexados ao contexto da requisição.
type UserClaims struct {
	UserID string
	Role   domain.UserRole
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

const bearerPrefix = "Bearer "

// unauthorizedMessage é a única mensagem de rejeição do guard. Header ausente,
// esquema errado, token malformado, assinatura inválida e token expirado
// produzem exatamente a mesma resposta: o cliente não descobre qual etapa falhou.
const unauthorizedMessage = "Não autorizado."

// NewAuthMiddleware cria uma função de middleware que valida um JWT e anexa as
// claims (UserID e Role) ao contexto da requisição. O guard confia apenas no
// token: não há consulta ao banco por requisição.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			// 1. Extrair o token do header Authorization: Bearer <token>
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				writeReject(w, apperror.NewUnauthorizedError(unauthorizedMessage))
				return
			}

			tokenString := authHeader[len(bearerPrefix):]

			// 2. Validar o token
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				// Toda falha do verificador colapsa na mesma rejeição.
				writeReject(w, apperror.NewUnauthorizedError(unauthorizedMessage))
				return
			}

			// 3. Anexar claims ao contexto
			userClaims := UserClaims{
				UserID: claims.UserID,
				Role:   domain.UserRole(claims.Role),
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaimsFromContext extrai as claims anexadas pelo middleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware restringe o acesso às roles informadas.
// Deve ser aplicado depois do NewAuthMiddleware na cadeia.
func PermissionMiddleware(requiredRoles ...domain.UserRole) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				writeReject(w, apperror.NewUnauthorizedError(unauthorizedMessage))
				return
			}

			for _, requiredRole := range requiredRoles {
				if claims.Role == requiredRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeReject(w, apperror.NewForbiddenError("Acesso negado. Você não tem a permissão necessária."))
		}
	}
}

// writeReject escreve a resposta de rejeição no formato de erro padrão da API.
func writeReject(w http.ResponseWriter, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}
