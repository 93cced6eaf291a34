package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"eduposts/config"
	"eduposts/internal/pkg/cache"
	"eduposts/internal/pkg/database"
	"eduposts/internal/pkg/logger"
	"eduposts/internal/pkg/password"
	"eduposts/internal/pkg/token"

	// Camadas da aplicação para injeção de dependências
	"eduposts/internal/api/post"
	"eduposts/internal/api/professor"
	"eduposts/internal/api/router"
	"eduposts/internal/api/user"
	"eduposts/internal/repository/postrepo"
	"eduposts/internal/repository/professorrepo"
	"eduposts/internal/repository/userrepo"
	"eduposts/internal/service/postservice"
	"eduposts/internal/service/professorservice"
	"eduposts/internal/service/userservice"
)

// @title EduPosts API
// @version 1.0
// @description API para gerenciamento de posts, usuários e professores com autenticação JWT.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. Carregar variáveis de ambiente (.env)
	// Se o arquivo não existir, as variáveis podem estar no ambiente do
	// sistema (ex: Docker); apenas avisamos e seguimos.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com recursos de infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Conexão Redis estabelecida.", nil)

	// 3. Injeção de dependências (ordem: Repository -> Service -> Handler)

	// Serviços de segurança: a chave de assinatura e o custo do bcrypt vêm da
	// configuração e ficam imutáveis pelo tempo de vida do processo.
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	hasher := password.NewHasher(cfg.BcryptCost)
	log.Debug("Serviços de token e hashing inicializados.", nil)

	// Usuários
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	userSvc := userservice.NewService(userRepo, tokenSvc, hasher, log)
	userHandler := user.NewHandler(userSvc, log)
	log.Debug("Camadas de Usuário inicializadas.", nil)

	// Posts
	postRepo := postrepo.NewPostRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	postSvc := postservice.NewService(postRepo, log)
	postHandler := post.NewHandler(postSvc, log)
	log.Debug("Camadas de Post inicializadas.", nil)

	// Professores
	professorRepo := professorrepo.NewProfessorRepository(db, cfg.DBTimeout, log)
	professorSvc := professorservice.NewService(professorRepo, log)
	professorHandler := professor.NewHandler(professorSvc, log)
	log.Debug("Camadas de Professor inicializadas.", nil)

	// 4. Roteador e servidor HTTP
	r := router.NewRouter(userHandler, postHandler, professorHandler, tokenSvc)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor EduPosts ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
