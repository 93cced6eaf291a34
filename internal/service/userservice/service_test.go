package userservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
	"eduposts/internal/pkg/middleware"
	"eduposts/internal/pkg/password"
	"eduposts/internal/pkg/token"
	"eduposts/internal/service/userservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

func newTestService(repo domain.UserRepository) (*userservice.UserService, *token.Service, *password.Hasher) {
	tokenSvc := token.NewService("chave-de-teste", time.Hour)
	hasher := password.NewHasher(bcrypt.MinCost)
	log := logger.NewLogger("error")
	return userservice.NewService(repo, tokenSvc, hasher, log), tokenSvc, hasher
}

// TestLogin_Success garante que credenciais corretas produzem um token com o
// ID e a role do usuário.
func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, tokenSvc, hasher := newTestService(mockRepo)

	hash, err := hasher.Hash("abcdef")
	require.NoError(t, err)

	storedUser := domain.User{
		ID:           "user-123",
		Name:         "Ana",
		Email:        "a@x.com",
		PasswordHash: hash,
		Role:         domain.RoleTeacher,
	}
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(storedUser, nil)

	tokenString, err := svc.Login(context.Background(), "a@x.com", "abcdef")

	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := tokenSvc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
	mockRepo.AssertExpectations(t)
}

// TestLogin_UnknownEmailAndWrongPassword_SameError garante que email não
// cadastrado e senha incorreta produzem o mesmo erro observável.
func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, hasher := newTestService(mockRepo)

	hash, err := hasher.Hash("abcdef")
	require.NoError(t, err)

	storedUser := domain.User{
		ID:           "user-123",
		Email:        "a@x.com",
		PasswordHash: hash,
		Role:         domain.RoleTeacher,
	}
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(storedUser, nil)
	mockRepo.On("FindByEmail", mock.Anything, "nao-existe@x.com").
		Return(domain.User{}, apperror.NewNotFoundError("Usuário com email 'nao-existe@x.com' não encontrado"))

	_, wrongPasswordErr := svc.Login(context.Background(), "a@x.com", "senha-errada")
	_, unknownEmailErr := svc.Login(context.Background(), "nao-existe@x.com", "abcdef")

	require.Error(t, wrongPasswordErr)
	require.Error(t, unknownEmailErr)

	// Mesma forma externa: mesmo tipo, mesma categoria, mesma mensagem.
	var unauthorized *apperror.UnauthorizedError
	assert.ErrorAs(t, wrongPasswordErr, &unauthorized)
	assert.ErrorAs(t, unknownEmailErr, &unauthorized)
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

// TestLogin_StoreFailure garante que uma falha de infraestrutura do DB
// propaga como erro interno, sem virar 401 nem ser re-tentada.
func TestLogin_StoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, _ := newTestService(mockRepo)

	dbErr := apperror.NewDBError("falha ao buscar usuário por email", assert.AnError)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(domain.User{}, dbErr).Once()

	_, err := svc.Login(context.Background(), "a@x.com", "abcdef")

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
	mockRepo.AssertExpectations(t)
}

// TestRegister_Success garante que o registro hasheia a senha antes de
// persistir: texto puro nunca chega ao repositório.
func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, hasher := newTestService(mockRepo)

	var persisted domain.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.User)
		}).
		Return(domain.User{ID: "user-123", Name: "Ana", Email: "a@x.com", Role: domain.RoleTeacher}, nil)

	reg := domain.UserRegistration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     "teacher",
	}

	created, err := svc.Register(context.Background(), reg)

	require.NoError(t, err)
	assert.Equal(t, "user-123", created.ID)
	assert.NotEqual(t, "abcdef", persisted.PasswordHash)
	assert.True(t, hasher.Verify("abcdef", persisted.PasswordHash))
	mockRepo.AssertExpectations(t)
}

// TestRegister_InvalidRole garante que roles fora do conjunto fechado são
// rejeitadas na fronteira.
func TestRegister_InvalidRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, _ := newTestService(mockRepo)

	reg := domain.UserRegistration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     "admin",
	}

	_, err := svc.Register(context.Background(), reg)

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "Save")
}

// TestRegister_MissingFields garante que campos obrigatórios ausentes são rejeitados.
func TestRegister_MissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, _ := newTestService(mockRepo)

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "a@x.com", Role: "student"})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "Save")
}

// TestRegister_DuplicateEmail garante que o conflito do repositório propaga como 409.
func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, _ := newTestService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).
		Return(domain.User{}, apperror.NewConflictError("O email 'a@x.com' já está em uso."))

	reg := domain.UserRegistration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     "student",
	}

	_, err := svc.Register(context.Background(), reg)

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

// TestListByRole_InvalidRole garante que a listagem rejeita roles desconhecidas.
func TestListByRole_InvalidRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _, _ := newTestService(mockRepo)

	_, err := svc.ListByRole(context.Background(), "diretor")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "FindByRole")
}

// --- Cenário fim a fim: registro, login e rota protegida ---

// memoryUserRepo é um repositório em memória para o cenário fim a fim.
type memoryUserRepo struct {
	byEmail map[string]domain.User
	nextID  string
}

func (r *memoryUserRepo) Save(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.User{}, apperror.NewConflictError("O email '" + user.Email + "' já está em uso.")
	}
	user.ID = r.nextID
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("Usuário com email '" + email + "' não encontrado")
	}
	return user, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, apperror.NewNotFoundError("Usuário com ID '" + id + "' não encontrado")
}

func (r *memoryUserRepo) FindByRole(_ context.Context, role domain.UserRole) ([]domain.User, error) {
	users := []domain.User{}
	for _, user := range r.byEmail {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

// TestEndToEnd_RegisterLoginProtectedRoute cobre o fluxo completo com hasher,
// serviço de token e middleware reais: registrar um professor, logar e acessar
// uma rota protegida com o token emitido.
func TestEndToEnd_RegisterLoginProtectedRoute(t *testing.T) {
	repo := &memoryUserRepo{byEmail: map[string]domain.User{}, nextID: "user-123"}
	tokenSvc := token.NewService("chave-de-teste", time.Hour)
	hasher := password.NewHasher(bcrypt.MinCost)
	log := logger.NewLogger("error")
	svc := userservice.NewService(repo, tokenSvc, hasher, log)

	// 1. Registro
	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     "teacher",
	})
	require.NoError(t, err)

	// 2. Login com a senha correta
	tokenString, err := svc.Login(context.Background(), "a@x.com", "abcdef")
	require.NoError(t, err)

	// 3. Rota protegida com o token emitido
	authMw := middleware.NewAuthMiddleware(tokenSvc)
	var capturedRole domain.UserRole
	handler := authMw(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserClaimsFromContext(r.Context())
		require.True(t, ok)
		capturedRole = claims.Role
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleTeacher, capturedRole)
}

// TestEndToEnd_ExpiredTokenRejected garante que, passado o prazo do token, a
// mesma chamada protegida é rejeitada com a resposta padrão do guard.
func TestEndToEnd_ExpiredTokenRejected(t *testing.T) {
	repo := &memoryUserRepo{byEmail: map[string]domain.User{}, nextID: "user-123"}
	// TTL negativo: o token emitido no login já nasce expirado.
	tokenSvc := token.NewService("chave-de-teste", -time.Minute)
	hasher := password.NewHasher(bcrypt.MinCost)
	log := logger.NewLogger("error")
	svc := userservice.NewService(repo, tokenSvc, hasher, log)

	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     "teacher",
	})
	require.NoError(t, err)

	tokenString, err := svc.Login(context.Background(), "a@x.com", "abcdef")
	require.NoError(t, err)

	authMw := middleware.NewAuthMiddleware(tokenSvc)
	handler := authMw(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("o handler protegido não deveria ser alcançado")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
