package services

import (
	"context"
	"errors"
	"testing"

	"threadboard/internal/common"
	"threadboard/internal/server/models"
)

type fakeTopicsRepo struct {
	listOut []*models.Topic
	listErr error

	getOut *models.Topic
	getErr error

	ownerOut int64
	ownerErr error

	createID  int64
	createErr error

	updateErr error
	updated   bool

	deleteErr error
	deleted   bool

	searchOut []*models.Topic
	searchErr error
}

func (f *fakeTopicsRepo) List(ctx context.Context) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTopicsRepo) GetOwner(ctx context.Context, id int64) (int64, error) {
	if f.ownerErr != nil {
		return 0, f.ownerErr
	}
	return f.ownerOut, nil
}

func (f *fakeTopicsRepo) Create(ctx context.Context, title, content string, userID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func (f *fakeTopicsRepo) Update(ctx context.Context, id int64, title, content string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	return nil
}

func (f *fakeTopicsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

func (f *fakeTopicsRepo) Search(ctx context.Context, q string) ([]*models.Topic, error) {
	return f.searchOut, f.searchErr
}

func TestTopicCreate_ReturnsFullRecord(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeTopicsRepo{
		createID: 10,
		getOut:   &models.Topic{ID: 10, Title: "hello", UserID: 7, AuthorName: "alice"},
	}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	topic, err := s.Create(context.Background(), 7, "hello", "body")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if topic.ID != 10 || topic.AuthorName != "alice" {
		t.Errorf("unexpected topic: %+v", topic)
	}
}

func TestTopicUpdate_OwnerSucceeds(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeTopicsRepo{
		ownerOut: 7,
		getOut:   &models.Topic{ID: 10, Title: "edited", UserID: 7},
	}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	topic, err := s.Update(context.Background(), 10, 7, "edited", "body")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !repo.updated {
		t.Error("repo update was not called")
	}
	if topic.Title != "edited" {
		t.Errorf("unexpected topic: %+v", topic)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("tx expectations: %v", err)
	}
}

func TestTopicUpdate_NonOwnerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{ownerOut: 7}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	_, err := s.Update(context.Background(), 10, 9, "edited", "body")
	if !errors.Is(err, common.ErrorForbidden) {
		t.Errorf("expected ErrorForbidden, got %v", err)
	}
	if repo.updated {
		t.Error("repo update must not run for a non-owner")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("tx expectations: %v", err)
	}
}

func TestTopicUpdate_AnonymousSubjectForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	// Even a topic row with owner 0 must not authorize subject 0.
	repo := &fakeTopicsRepo{ownerOut: 0}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	_, err := s.Update(context.Background(), 10, 0, "edited", "body")
	if !errors.Is(err, common.ErrorForbidden) {
		t.Errorf("expected ErrorForbidden, got %v", err)
	}
}

func TestTopicUpdate_MissingTopicBeforeOwnership(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{ownerErr: common.ErrorNotFound}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	_, err := s.Update(context.Background(), 404, 9, "edited", "body")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestTopicDelete(t *testing.T) {
	tests := []struct {
		name    string
		subject int64
		repo    *fakeTopicsRepo
		wantErr error
	}{
		{"owner deletes", 7, &fakeTopicsRepo{ownerOut: 7}, nil},
		{"non-owner forbidden", 9, &fakeTopicsRepo{ownerOut: 7}, common.ErrorForbidden},
		{"missing topic", 7, &fakeTopicsRepo{ownerErr: common.ErrorNotFound}, common.ErrorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMockDB(t)
			defer db.Close()
			mock.ExpectBegin()
			if tt.wantErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			s := NewTopicService(db, &fakeRepoManager{t: tt.repo})

			err := s.Delete(context.Background(), 10, tt.subject)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Delete error: %v", err)
				}
				if !tt.repo.deleted {
					t.Error("repo delete was not called")
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if tt.repo.deleted {
					t.Error("repo delete must not run")
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("tx expectations: %v", err)
			}
		})
	}
}

func TestTopicSearch_PassesThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeTopicsRepo{searchOut: []*models.Topic{{ID: 1, Title: "go"}}}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	out, err := s.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(out) != 1 || out[0].Title != "go" {
		t.Errorf("unexpected result: %+v", out)
	}
}
