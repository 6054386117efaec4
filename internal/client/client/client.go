package client

import (
	"context"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
)

type Client interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, draft models.Draft) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}
