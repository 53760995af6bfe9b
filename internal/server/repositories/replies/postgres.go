package replies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"threadboard/internal/common"
	"threadboard/internal/dbx"
	"threadboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error) {
	query :=
		`SELECT
			r.id,
			r.topic_id,
			r.content,
			r.user_id,
			u.username,
			COALESCE(u.avatar_url, '') AS avatar_url,
			to_char(r.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at
		 FROM replies r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.topic_id = $1
		 ORDER BY r.created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var replies []*models.Reply
	for rows.Next() {
		rp := &models.Reply{}
		if err := rows.Scan(
			&rp.ID, &rp.TopicID, &rp.Content, &rp.UserID,
			&rp.AuthorName, &rp.AuthorAvatarURL, &rp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		replies = append(replies, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return replies, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Reply, error) {
	query :=
		`SELECT
			r.id, r.topic_id, r.content, r.user_id,
			u.username, COALESCE(u.avatar_url, '') AS avatar_url,
			to_char(r.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at
		 FROM replies r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.id = $1
		 `

	rp := &models.Reply{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rp.ID, &rp.TopicID, &rp.Content, &rp.UserID,
		&rp.AuthorName, &rp.AuthorAvatarURL, &rp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rp, nil
}

func (r *PostgresRepository) GetOwner(ctx context.Context, id int64) (int64, error) {
	query :=
		`SELECT user_id FROM replies
		 WHERE id = $1
		 `

	var ownerID int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ownerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ownerID, nil
}

func (r *PostgresRepository) Create(ctx context.Context, topicID int64, content string, userID int64) (int64, error) {
	query :=
		`INSERT INTO replies (topic_id, content, user_id, created_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id
		 `

	var id int64
	if err := r.db.QueryRowContext(ctx, query, topicID, content, userID).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, content string) error {
	query :=
		`UPDATE replies SET content = $1
		 WHERE id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, content, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM replies
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
