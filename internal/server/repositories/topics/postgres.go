package topics

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Topic, error) {
	query :=
		`SELECT
			t.id,
			t.title,
			t.content,
			t.user_id,
			u.username,
			COALESCE(u.avatar_url, '') AS avatar_url,
			to_char(t.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at,
			COUNT(r.id) AS reply_count
		 FROM topics t
		 JOIN users u ON u.id = t.user_id
		 LEFT JOIN replies r ON r.topic_id = t.id
		 GROUP BY t.id, t.title, t.content, t.user_id, u.username, u.avatar_url, t.created_at
		 ORDER BY t.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var topics []*models.Topic
	for rows.Next() {
		t := &models.Topic{}
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Content, &t.UserID,
			&t.AuthorName, &t.AuthorAvatarURL, &t.CreatedAt, &t.ReplyCount,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topics, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	query :=
		`SELECT
			t.id, t.title, t.content, t.user_id,
			u.username, COALESCE(u.avatar_url, '') AS avatar_url,
			to_char(t.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at,
			(SELECT COUNT(*) FROM replies r WHERE r.topic_id = t.id) AS reply_count
		 FROM topics t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.id = $1
		 `

	t := &models.Topic{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Content, &t.UserID,
		&t.AuthorName, &t.AuthorAvatarURL, &t.CreatedAt, &t.ReplyCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) GetOwner(ctx context.Context, id int64) (int64, error) {
	query :=
		`SELECT user_id FROM topics
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

func (r *PostgresRepository) Create(ctx context.Context, title, content string, userID int64) (int64, error) {
	query :=
		`INSERT INTO topics (title, content, user_id, created_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id
		 `

	var id int64
	if err := r.db.QueryRowContext(ctx, query, title, content, userID).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, title, content string) error {
	query :=
		`UPDATE topics SET title = $1, content = $2
		 WHERE id = $3
		 `

	if _, err := r.db.ExecContext(ctx, query, title, content, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM topics
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Search(ctx context.Context, q string) ([]*models.Topic, error) {
	query :=
		`SELECT
			t.id, t.title, t.content, t.user_id,
			u.username,
			COALESCE(u.avatar_url, '') AS avatar_url,
			to_char(t.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at
		 FROM topics t
		 JOIN users u ON u.id = t.user_id
		 WHERE
			t.title ILIKE '%' || $1 || '%' OR
			t.content ILIKE '%' || $1 || '%' OR
			u.username ILIKE '%' || $1 || '%'
		 ORDER BY t.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var topics []*models.Topic
	for rows.Next() {
		t := &models.Topic{}
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Content, &t.UserID,
			&t.AuthorName, &t.AuthorAvatarURL, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topics, nil
}
