package professorservice

import (
	"context"

	"github.com/google/uuid"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
)

// Service implementa a interface domain.ProfessorService.
type Service struct {
	repo   domain.ProfessorRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do serviço de professores.
func NewService(repo domain.ProfessorRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateProfessor cadastra um novo professor após validações de negócio.
func (s *Service) CreateProfessor(ctx context.Context, input domain.ProfessorInput) (domain.Professor, error) {
	if input.Name == "" || input.Specialty == "" {
		return domain.Professor{}, apperror.NewValidationError("Nome e especialidade são obrigatórios.")
	}

	professor := domain.Professor{
		Name:      input.Name,
		Specialty: input.Specialty,
	}

	created, err := s.repo.Save(ctx, professor)
	if err != nil {
		return domain.Professor{}, err
	}

	s.logger.Info("Professor cadastrado com sucesso.", map[string]interface{}{"professor_id": created.ID})
	return created, nil
}

// GetProfessorByID busca um professor pelo ID após validação de formato.
func (s *Service) GetProfessorByID(ctx context.Context, id string) (domain.Professor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Professor{}, apperror.NewValidationError("O ID do professor deve ser um UUID válido.")
	}

	return s.repo.FindByID(ctx, id)
}

// GetProfessors retorna todos os professores cadastrados.
func (s *Service) GetProfessors(ctx context.Context) ([]domain.Professor, error) {
	return s.repo.FindAll(ctx)
}
