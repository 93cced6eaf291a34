package professor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
)

// ProfessorService define o contrato que o Handler espera da camada de Serviço.
type ProfessorService interface {
	CreateProfessor(ctx context.Context, input domain.ProfessorInput) (domain.Professor, error)
	GetProfessorByID(ctx context.Context, id string) (domain.Professor, error)
	GetProfessors(ctx context.Context) ([]domain.Professor, error)
}

// Handler agrupa todos os métodos de Handler de professores.
type Handler struct {
	Service ProfessorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProfessorService, log logger.Logger) *Handler {
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

// CreateProfessorHandler lida com a requisição POST /v1/professores.
// @Summary Cadastra um novo professor
// @Description Cria o cadastro de um professor. Restrito a usuários com role teacher.
// @Tags professores
// @Accept json
// @Produce json
// @Param professor body domain.ProfessorInput true "Dados do professor (nome e especialidade)"
// @Success 201 {object} domain.Professor "Professor cadastrado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autorizado"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security BearerAuth
// @Router /professores [post]
func (h *Handler) CreateProfessorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input domain.ProfessorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	created, err := h.Service.CreateProfessor(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// ListProfessorsHandler lida com a requisição GET /v1/professores.
// @Summary Lista todos os professores
// @Tags professores
// @Produce json
// @Success 200 {array} domain.Professor "Professores encontrados"
// @Failure 401 {object} domain.ErrorResponse "Não autorizado"
// @Security BearerAuth
// @Router /professores [get]
func (h *Handler) ListProfessorsHandler(w http.ResponseWriter, r *http.Request) {
	professores, err := h.Service.GetProfessors(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, professores, nil, http.StatusOK)
}
