package domain

import (
	"context"
	"time"
)

// Professor representa o cadastro de um professor e sua especialidade.
type Professor struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Specialty string    `json:"especialidade"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfessorInput representa o payload de criação de um professor.
type ProfessorInput struct {
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}

// ProfessorRepository define o contrato de persistência para a entidade Professor.
type ProfessorRepository interface {
	Save(ctx context.Context, professor Professor) (Professor, error)
	FindByID(ctx context.Context, id string) (Professor, error)
	FindAll(ctx context.Context) ([]Professor, error)
}

// ProfessorService define o contrato de lógica de negócio para a entidade Professor.
type ProfessorService interface {
	CreateProfessor(ctx context.Context, input ProfessorInput) (Professor, error)
	GetProfessorByID(ctx context.Context, id string) (Professor, error)
	GetProfessors(ctx context.Context) ([]Professor, error)
}
