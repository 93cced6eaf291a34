package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "eduposts/docs" // Registro da documentação gerada pelo swag

	"eduposts/internal/api/post"
	"eduposts/internal/api/professor"
	"eduposts/internal/api/user"
	"eduposts/internal/domain"
	"eduposts/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências e aplica
// os middlewares de autenticação/autorização por rota: o guard traduz o
// header Authorization em uma identidade confiável antes de qualquer handler
// protegido executar.
func NewRouter(
	userHandler *user.Handler,
	postHandler *post.Handler,
	professorHandler *professor.Handler,
	tokenSvc middleware.TokenService,
) http.Handler {

	mux := http.NewServeMux()

	authRequired := middleware.NewAuthMiddleware(tokenSvc)
	teacherOnly := middleware.PermissionMiddleware(domain.RoleTeacher)

	// --- Rotas públicas ---
	mux.HandleFunc("/ping", PingHandler)
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	mux.HandleFunc("/v1/register", userHandler.RegisterUserHandler)
	mux.HandleFunc("/v1/login", userHandler.LoginUserHandler)

	// --- Usuários (listagem restrita a professores) ---
	mux.HandleFunc("/v1/users", authRequired(teacherOnly(userHandler.ListUsersByRoleHandler)))

	// --- Posts ---
	// Leitura para qualquer usuário autenticado; escrita apenas para professores.
	mux.HandleFunc("/v1/posts", authRequired(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			postHandler.ListPostsHandler(w, r)
		case http.MethodPost:
			teacherOnly(postHandler.CreatePostHandler)(w, r)
		default:
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		}
	}))

	mux.HandleFunc("/v1/posts/", authRequired(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			postHandler.GetPostByIDHandler(w, r)
		case http.MethodPut:
			teacherOnly(postHandler.UpdatePostHandler)(w, r)
		case http.MethodDelete:
			teacherOnly(postHandler.DeletePostHandler)(w, r)
		default:
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		}
	}))

	// --- Professores ---
	mux.HandleFunc("/v1/professores", authRequired(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			professorHandler.ListProfessorsHandler(w, r)
		case http.MethodPost:
			teacherOnly(professorHandler.CreateProfessorHandler)(w, r)
		default:
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		}
	}))

	return mux
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
