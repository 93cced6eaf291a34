package postrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/cache"
	"eduposts/internal/pkg/logger"
)

// Chave de cache para um post individual.
const postCacheKey = "post:%s"

// PostRepository implementa a interface domain.PostRepository.
// Leituras por ID usam a estratégia Cache-Aside sobre Redis.
type PostRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewPostRepository cria e retorna uma nova instância do repositório de posts.
func NewPostRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *PostRepository {
	return &PostRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

const insertPostSQL = `INSERT INTO posts (id, titulo, autor, descricao, created_at, updated_at)
                       VALUES ($1, $2, $3, $4, $5, $6)`

const selectPostSQL = `SELECT id, titulo, autor, descricao, created_at, updated_at FROM posts`

// Save persiste um novo post.
func (r *PostRepository) Save(ctx context.Context, post domain.Post) (domain.Post, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertPostSQL,
		post.ID,
		post.Title,
		post.Author,
		post.Description,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir post no DB.", err)
		return domain.Post{}, apperror.NewDBError("falha ao inserir post", err)
	}

	r.logger.Info("Post salvo com sucesso no repositório.", map[string]interface{}{"post_id": post.ID})
	return post, nil
}

// FindByID busca um post pelo ID, utilizando a estratégia Cache-Aside.
func (r *PostRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(postCacheKey, id)
	var post domain.Post

	// 1. Tentar obter do cache (Redis)
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		if json.Unmarshal([]byte(cachedData), &post) == nil {
			return post, nil
		}
		// Desserialização falhou: ignora a entrada e segue para o DB.
	} else if err != cache.ErrCacheMiss {
		// Falha real de cache (e.g., conexão perdida) não derruba a leitura.
		r.logger.Warn("Falha ao ler post do cache.", map[string]interface{}{"post_id": id, "error": err.Error()})
	}

	// 2. Busca no banco de dados
	row := r.DB.QueryRowContext(ctxTimeout, selectPostSQL+` WHERE id = $1`, id)
	if err := scanPost(row, &post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, apperror.NewNotFoundError(fmt.Sprintf("Post com ID '%s' não encontrado", id))
		}
		r.logger.Error("Falha ao buscar post no DB.", err)
		return domain.Post{}, apperror.NewDBError("falha ao buscar post", err)
	}

	// 3. Popula o cache para futuras leituras
	if postJSON, marshalErr := json.Marshal(post); marshalErr == nil {
		if cacheErr := r.Cache.Set(ctxTimeout, key, postJSON, r.CacheTTL); cacheErr != nil {
			r.logger.Warn("Falha ao popular cache de post.", map[string]interface{}{"post_id": id, "error": cacheErr.Error()})
		}
	}

	return post, nil
}

// FindAll retorna todos os posts, mais recentes primeiro.
func (r *PostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, selectPostSQL+` ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao listar posts no DB.", err)
		return nil, apperror.NewDBError("falha ao listar posts", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := scanPost(rows, &post); err != nil {
			r.logger.Error("Falha ao mapear post retornado pelo DB.", err)
			return nil, apperror.NewDBError("falha ao mapear post", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar posts", err)
	}

	return posts, nil
}

const updatePostSQL = `UPDATE posts SET titulo = $1, autor = $2, descricao = $3, updated_at = $4
                       WHERE id = $5`

// Update atualiza um post existente e invalida a entrada de cache correspondente.
func (r *PostRepository) Update(ctx context.Context, post domain.Post) (domain.Post, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	post.UpdatedAt = time.Now()

	result, err := r.DB.ExecContext(
		ctxTimeout,
		updatePostSQL,
		post.Title,
		post.Author,
		post.Description,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		r.logger.Error("Falha ao atualizar post no DB.", err)
		return domain.Post{}, apperror.NewDBError("falha ao atualizar post", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Post{}, apperror.NewDBError("falha ao verificar atualização do post", err)
	}
	if affected == 0 {
		return domain.Post{}, apperror.NewNotFoundError(fmt.Sprintf("Post com ID '%s' não encontrado", post.ID))
	}

	r.invalidate(ctxTimeout, post.ID)
	return post, nil
}

// Delete remove um post e invalida a entrada de cache correspondente.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar post no DB.", err)
		return apperror.NewDBError("falha ao deletar post", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("falha ao verificar deleção do post", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Post com ID '%s' não encontrado", id))
	}

	r.invalidate(ctxTimeout, id)
	return nil
}

// invalidate remove a entrada de cache de um post; falha de cache é apenas logada.
func (r *PostRepository) invalidate(ctx context.Context, id string) {
	key := fmt.Sprintf(postCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache de post.", map[string]interface{}{"post_id": id, "error": err.Error()})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner, post *domain.Post) error {
	return row.Scan(
		&post.ID,
		&post.Title,
		&post.Author,
		&post.Description,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}
