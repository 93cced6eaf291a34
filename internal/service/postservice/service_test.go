package postservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
	"eduposts/internal/service/postservice"
)

// MockPostRepository é uma implementação mock da interface PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Save(ctx context.Context, post domain.Post) (domain.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post domain.Post) (domain.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TestCreatePost_Success testa a criação de um post válido.
func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	input := domain.PostInput{Title: "Avaliação P1", Author: "Ana", Description: "Conteúdo da prova."}
	expected := domain.Post{ID: uuid.New().String(), Title: input.Title, Author: input.Author, Description: input.Description}

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Post")).Return(expected, nil)

	created, err := svc.CreatePost(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, expected, created)
	mockRepo.AssertExpectations(t)
}

// TestCreatePost_MissingFields testa a rejeição de payload incompleto.
func TestCreatePost_MissingFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	_, err := svc.CreatePost(context.Background(), domain.PostInput{Title: "Sem autor"})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "Save")
}

// TestGetPostByID_InvalidID testa a rejeição de IDs fora do formato UUID.
func TestGetPostByID_InvalidID(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	_, err := svc.GetPostByID(context.Background(), "nao-e-uuid")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "FindByID")
}

// TestGetPostByID_NotFound testa a propagação do 404 do repositório.
func TestGetPostByID_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	id := uuid.New().String()
	mockRepo.On("FindByID", mock.Anything, id).
		Return(domain.Post{}, apperror.NewNotFoundError("Post com ID '"+id+"' não encontrado"))

	_, err := svc.GetPostByID(context.Background(), id)

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertExpectations(t)
}

// TestUpdatePost_Success testa a atualização de um post existente.
func TestUpdatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	id := uuid.New().String()
	input := domain.PostInput{Title: "Avaliação P2", Author: "Ana", Description: "Conteúdo atualizado."}
	expected := domain.Post{ID: id, Title: input.Title, Author: input.Author, Description: input.Description}

	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("domain.Post")).Return(expected, nil)

	updated, err := svc.UpdatePost(context.Background(), id, input)

	assert.NoError(t, err)
	assert.Equal(t, expected, updated)
	mockRepo.AssertExpectations(t)
}

// TestDeletePost_NotFound testa a remoção de um post inexistente.
func TestDeletePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockLogger := logger.NewLogger("error")

	svc := postservice.NewService(mockRepo, mockLogger)

	id := uuid.New().String()
	mockRepo.On("Delete", mock.Anything, id).
		Return(apperror.NewNotFoundError("Post com ID '" + id + "' não encontrado"))

	err := svc.DeletePost(context.Background(), id)

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertExpectations(t)
}
