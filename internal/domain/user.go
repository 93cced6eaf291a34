package domain

import (
	"context"
	"time"
)

// User representa a entidade do usuário no sistema.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
// O conjunto de valores é fechado: aluno (student) ou professor (teacher).
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

// ParseRole valida e converte uma string para UserRole.
// Qualquer valor fora do conjunto fechado é rejeitado na fronteira do repositório/serviço.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleStudent, RoleTeacher:
		return UserRole(s), true
	}
	return "", false
}

// UserRegistration representa o payload de entrada para o registro.
// A senha em texto puro existe apenas durante a requisição e nunca deve ser logada.
type UserRegistration struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserRepository define o contrato de persistência para a entidade User.
// O repositório recebe o hash já calculado; texto puro nunca chega à camada de dados.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	FindByRole(ctx context.Context, role UserRole) ([]User, error)
}

// UserService define o contrato de lógica de negócio para a entidade User.
type UserService interface {
	Register(ctx context.Context, registration UserRegistration) (User, error)
	Login(ctx context.Context, email string, password string) (string, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
}
