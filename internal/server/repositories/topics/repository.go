package topics

import (
	"context"

	"threadboard/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	GetByID(ctx context.Context, id int64) (*models.Topic, error)
	// GetOwner returns the id of the account that created the topic.
	GetOwner(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, title, content string, userID int64) (int64, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string) ([]*models.Topic, error)
}
