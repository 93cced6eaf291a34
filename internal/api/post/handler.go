package post

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
	"eduposts/internal/pkg/middleware"
)

// PostService define o contrato que o Handler espera da camada de Serviço.
type PostService interface {
	CreatePost(ctx context.Context, input domain.PostInput) (domain.Post, error)
	GetPostByID(ctx context.Context, id string) (domain.Post, error)
	GetPosts(ctx context.Context) ([]domain.Post, error)
	UpdatePost(ctx context.Context, id string, input domain.PostInput) (domain.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler de posts.
type Handler struct {
	Service PostService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PostService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// extractID extrai o ID do último segmento da URL (/v1/posts/{id}).
func extractID(r *http.Request) (string, error) {
	path := strings.Trim(r.URL.Path, "/")
	segments := strings.Split(path, "/")
	if len(segments) != 3 || segments[2] == "" {
		return "", apperror.NewValidationError("Formato de URL inválido ou ID ausente.")
	}
	return segments[2], nil
}

// CreatePostHandler lida com a requisição POST /v1/posts.
// @Summary Cria um novo post
// @Description Cria uma nova publicação. Restrito a usuários com role teacher.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body domain.PostInput true "Dados do post (titulo, autor e descricao)"
// @Success 201 {object} domain.Post "Post criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autorizado"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security BearerAuth
// @Router /posts [post]
func (h *Handler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Info("Criação de post solicitada.", map[string]interface{}{
			"user_id": claims.UserID,
			"role":    claims.Role,
		})
	}

	var input domain.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	newPost, err := h.Service.CreatePost(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, newPost, nil, http.StatusCreated)
}

// ListPostsHandler lida com a requisição GET /v1/posts.
// @Summary Lista todos os posts
// @Tags posts
// @Produce json
// @Success 200 {array} domain.Post "Posts encontrados"
// @Failure 401 {object} domain.ErrorResponse "Não autorizado"
// @Security BearerAuth
// @Router /posts [get]
func (h *Handler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetPosts(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, posts, nil, http.StatusOK)
}

// GetPostByIDHandler lida com a requisição GET /v1/posts/{id}.
// @Summary Busca um post por ID
// @Tags posts
// @Produce json
// @Param id path string true "ID do post"
// @Success 200 {object} domain.Post "Post encontrado"
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Failure 401 {object} domain.ErrorResponse "Não autorizado"
// @Security BearerAuth
// @Router /posts/{id} [get]
func (h *Handler) GetPostByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	post, err := h.Service.GetPostByID(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, post, nil, http.StatusOK)
}

// UpdatePostHandler lida com a requisição PUT /v1/posts/{id}.
// @Summary Atualiza um post
// @Description Atualiza uma publicação existente. Restrito a usuários com role teacher.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "ID do post"
// @Param post body domain.PostInput true "Dados do post (titulo, autor e descricao)"
// @Success 200 {object} domain.Post "Post atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *Handler) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	var input domain.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	updated, err := h.Service.UpdatePost(r.Context(), id, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}

// DeletePostHandler lida com a requisição DELETE /v1/posts/{id}.
// @Summary Remove um post
// @Description Remove uma publicação existente. Restrito a usuários com role teacher.
// @Tags posts
// @Produce json
// @Param id path string true "ID do post"
// @Success 200 {object} map[string]string "Post removido"
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *Handler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if err := h.Service.DeletePost(r.Context(), id); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"msg": "Post deletado com sucesso"}, nil, http.StatusOK)
}
