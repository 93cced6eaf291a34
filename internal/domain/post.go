package domain

import (
	"context"
	"time"
)

// Post representa uma publicação feita por um professor.
// As tags JSON mantêm os nomes em português esperados pelos clientes.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Author      string    `json:"autor"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostInput representa o payload de criação/atualização de um post.
type PostInput struct {
	Title       string `json:"titulo"`
	Author      string `json:"autor"`
	Description string `json:"descricao"`
}

// PostRepository define o contrato de persistência para a entidade Post.
type PostRepository interface {
	Save(ctx context.Context, post Post) (Post, error)
	FindByID(ctx context.Context, id string) (Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id string) error
}

// PostService define o contrato de lógica de negócio para a entidade Post.
type PostService interface {
	CreatePost(ctx context.Context, input PostInput) (Post, error)
	GetPostByID(ctx context.Context, id string) (Post, error)
	GetPosts(ctx context.Context) ([]Post, error)
	UpdatePost(ctx context.Context, id string, input PostInput) (Post, error)
	DeletePost(ctx context.Context, id string) error
}
