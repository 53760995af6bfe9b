package replies

import (
	"context"

	"threadboard/internal/server/models"
)

type Repository interface {
	ListByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error)
	GetByID(ctx context.Context, id int64) (*models.Reply, error)
	// GetOwner returns the id of the account that wrote the reply.
	GetOwner(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, topicID int64, content string, userID int64) (int64, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}
