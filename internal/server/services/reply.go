package services

import (
	"context"
	"database/sql"
	"fmt"

	"threadboard/internal/common"
	"threadboard/internal/dbx"
	"threadboard/internal/server/auth"
	"threadboard/internal/server/models"
	"threadboard/internal/server/repositories/repomanager"
)

// ReplyService mirrors TopicService for replies: public reads, owner-only
// mutations with the same not-found-before-ownership ordering.
type ReplyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReplyService(db *sql.DB, m repomanager.RepositoryManager) *ReplyService {
	return &ReplyService{db: db, repomanager: m}
}

func (s *ReplyService) ListByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error) {
	return s.repomanager.Replies(s.db).ListByTopic(ctx, topicID)
}

func (s *ReplyService) Create(ctx context.Context, subjectID, topicID int64, content string) (*models.Reply, error) {
	repo := s.repomanager.Replies(s.db)

	id, err := repo.Create(ctx, topicID, content, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error creating reply: %w", err)
	}

	return repo.GetByID(ctx, id)
}

func (s *ReplyService) Update(ctx context.Context, id, subjectID int64, content string) (*models.Reply, error) {
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Replies(tx)

		ownerID, err := repo.GetOwner(ctx, id)
		if err != nil {
			return err
		}
		if !auth.Authorize(subjectID, ownerID) {
			return common.ErrorForbidden
		}

		return repo.Update(ctx, id, content)
	}); err != nil {
		return nil, err
	}

	return s.repomanager.Replies(s.db).GetByID(ctx, id)
}

func (s *ReplyService) Delete(ctx context.Context, id, subjectID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Replies(tx)

		ownerID, err := repo.GetOwner(ctx, id)
		if err != nil {
			return err
		}
		if !auth.Authorize(subjectID, ownerID) {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, id)
	})
}
