package userservice

import (
	"context"
	"errors"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
	"eduposts/internal/pkg/token"
)

// invalidCredentials é a única mensagem de falha de login. Email desconhecido
// e senha incorreta produzem exatamente o mesmo erro observável, fechando o
// canal de enumeração de emails cadastrados.
const invalidCredentials = "Credenciais inválidas."

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// PasswordHasher é o contrato da camada de hashing de senhas (internal/pkg/password).
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret string, hashed string) bool
}

// UserService implementa a lógica de negócio de registro, login e listagem de usuários.
type UserService struct {
	UserRepo domain.UserRepository
	TokenSvc TokenService
	Hasher   PasswordHasher
	logger   logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o repositório,
// o serviço de token e o hasher de senhas.
func NewService(repo domain.UserRepository, tokenSvc TokenService, hasher PasswordHasher, log logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		Hasher:   hasher,
		logger:   log,
	}
}

// Register registra um novo usuário no sistema.
// A senha é hasheada aqui: texto puro nunca chega ao repositório.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		return domain.User{}, apperror.NewValidationError("Nome, email e senha são obrigatórios.")
	}

	// Role fora do conjunto fechado é rejeitada na fronteira.
	role, ok := domain.ParseRole(registration.Role)
	if !ok {
		return domain.User{}, apperror.NewValidationError("Role inválida. Valores aceitos: student, teacher.")
	}

	hashedPassword, err := s.Hasher.Hash(registration.Password)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	newUser := domain.User{
		Name:         registration.Name,
		Email:        registration.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// O repositório traduz email duplicado para ConflictError (409).
	user, err := s.UserRepo.Save(ctx, newUser)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return user, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.NewUnauthorizedError(invalidCredentials)
	}

	// 1. Buscar usuário pelo email
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			// Mesmo erro observável da senha incorreta.
			return "", apperror.NewUnauthorizedError(invalidCredentials)
		}
		// Falha de infraestrutura (DB) propaga como 500, sem retry.
		return "", err
	}

	// 2. Comparar a senha informada com o hash salvo
	if !s.Hasher.Verify(password, user.PasswordHash) {
		return "", apperror.NewUnauthorizedError(invalidCredentials)
	}

	// 3. Gerar o JWT com id e role
	tokenString, err := s.TokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return tokenString, nil
}

// ListByRole lista os usuários de uma role (aluno ou professor).
func (s *UserService) ListByRole(ctx context.Context, roleStr string) ([]domain.User, error) {
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, apperror.NewValidationError("Role inválida. Valores aceitos: student, teacher.")
	}

	return s.UserRepo.FindByRole(ctx, role)
}
