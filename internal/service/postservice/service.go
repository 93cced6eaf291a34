package postservice

import (
	"context"

	"github.com/google/uuid"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
)

// Service implementa a interface domain.PostService.
type Service struct {
	repo   domain.PostRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do serviço de posts.
func NewService(repo domain.PostRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreatePost cria um novo post após validações de negócio.
func (s *Service) CreatePost(ctx context.Context, input domain.PostInput) (domain.Post, error) {
	s.logger.Debug("Iniciando criação de post no serviço.", map[string]interface{}{"titulo": input.Title})

	if err := validateInput(input); err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}

	created, err := s.repo.Save(ctx, post)
	if err != nil {
		return domain.Post{}, err
	}

	s.logger.Info("Post criado com sucesso.", map[string]interface{}{"post_id": created.ID, "titulo": created.Title})
	return created, nil
}

// GetPostByID busca um post pelo ID após validação de formato.
func (s *Service) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Post{}, apperror.NewValidationError("O ID do post deve ser um UUID válido.")
	}

	return s.repo.FindByID(ctx, id)
}

// GetPosts retorna todos os posts.
func (s *Service) GetPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindAll(ctx)
}

// UpdatePost atualiza um post existente.
func (s *Service) UpdatePost(ctx context.Context, id string, input domain.PostInput) (domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Post{}, apperror.NewValidationError("O ID do post deve ser um UUID válido.")
	}
	if err := validateInput(input); err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return domain.Post{}, err
	}

	s.logger.Info("Post atualizado com sucesso.", map[string]interface{}{"post_id": updated.ID})
	return updated, nil
}

// DeletePost remove um post pelo ID.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do post deve ser um UUID válido.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Post removido com sucesso.", map[string]interface{}{"post_id": id})
	return nil
}

// validateInput aplica as validações básicas do payload de post.
func validateInput(input domain.PostInput) error {
	if input.Title == "" || input.Author == "" || input.Description == "" {
		return apperror.NewValidationError("Título, autor e descrição são obrigatórios.")
	}
	return nil
}
