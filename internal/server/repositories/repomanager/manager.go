package repomanager

import (
	"context"
	"database/sql"

	"threadboard/internal/dbx"
	"threadboard/internal/server/repositories/replies"
	"threadboard/internal/server/repositories/topics"
	"threadboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Topics(db dbx.DBTX) topics.Repository
	Replies(db dbx.DBTX) replies.Repository
}
