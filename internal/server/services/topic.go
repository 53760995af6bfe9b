package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"threadboard/internal/common"
	"threadboard/internal/dbx"
	"threadboard/internal/server/auth"
	"threadboard/internal/server/models"
	"threadboard/internal/server/repositories/repomanager"
)

// TopicService implements topic CRUD. Reads are public; every mutation checks
// the ownership policy against the topic's recorded owner, after confirming
// the topic exists (a missing topic is reported as not-found, never as a
// permission problem).
type TopicService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTopicService(db *sql.DB, m repomanager.RepositoryManager) *TopicService {
	return &TopicService{db: db, repomanager: m}
}

func (s *TopicService) List(ctx context.Context) ([]*models.Topic, error) {
	return s.repomanager.Topics(s.db).List(ctx)
}

func (s *TopicService) Get(ctx context.Context, id int64) (*models.Topic, error) {
	return s.repomanager.Topics(s.db).GetByID(ctx, id)
}

func (s *TopicService) Search(ctx context.Context, q string) ([]*models.Topic, error) {
	return s.repomanager.Topics(s.db).Search(ctx, q)
}

// Create inserts a topic owned by subjectID and returns the full record as
// rendered by the API (author fields included).
func (s *TopicService) Create(ctx context.Context, subjectID int64, title, content string) (*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)

	id, err := repo.Create(ctx, title, content, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error creating topic: %w", err)
	}

	return repo.GetByID(ctx, id)
}

// Update edits a topic on behalf of subjectID. The owner lookup and the
// update run in one transaction so the ownership decision cannot go stale.
func (s *TopicService) Update(ctx context.Context, id, subjectID int64, title, content string) (*models.Topic, error) {
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Topics(tx)

		ownerID, err := repo.GetOwner(ctx, id)
		if err != nil {
			return err
		}
		if !auth.Authorize(subjectID, ownerID) {
			return common.ErrorForbidden
		}

		return repo.Update(ctx, id, title, content)
	}); err != nil {
		return nil, err
	}

	return s.repomanager.Topics(s.db).GetByID(ctx, id)
}

// Delete removes a topic on behalf of subjectID. Replies go with it via the
// schema's cascade.
func (s *TopicService) Delete(ctx context.Context, id, subjectID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Topics(tx)

		ownerID, err := repo.GetOwner(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return err
		}
		if !auth.Authorize(subjectID, ownerID) {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, id)
	})
}
