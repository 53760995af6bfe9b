// Package http exposes the forum API over HTTP using gin. The request
// pipeline is: origin gate (cross-origin filter), then the bearer-token
// auth gate on mutating routes, then the handler.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"threadboard/internal/logging"
	"threadboard/internal/server/config"
	"threadboard/internal/server/models"
)

// UserService is the account surface the transport needs.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	SetAvatarURL(ctx context.Context, userID int64, avatarURL string) error
}

// TopicService is the topic surface the transport needs.
type TopicService interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Get(ctx context.Context, id int64) (*models.Topic, error)
	Search(ctx context.Context, q string) ([]*models.Topic, error)
	Create(ctx context.Context, subjectID int64, title, content string) (*models.Topic, error)
	Update(ctx context.Context, id, subjectID int64, title, content string) (*models.Topic, error)
	Delete(ctx context.Context, id, subjectID int64) error
}

// ReplyService is the reply surface the transport needs.
type ReplyService interface {
	ListByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error)
	Create(ctx context.Context, subjectID, topicID int64, content string) (*models.Reply, error)
	Update(ctx context.Context, id, subjectID int64, content string) (*models.Reply, error)
	Delete(ctx context.Context, id, subjectID int64) error
}

// AvatarStore persists uploaded avatar images and returns their public URL.
type AvatarStore interface {
	Store(ctx context.Context, userID int64, filename, contentType string, data []byte) (string, error)
}

type HTTPServer struct {
	address        string
	logger         logging.Logger
	users          UserService
	topics         TopicService
	replies        ReplyService
	avatars        AvatarStore
	tokenSecret    []byte
	allowedOrigins []string
	r              *gin.Engine
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, ts TopicService, rs ReplyService, av AvatarStore) (*HTTPServer, error) {
	s := &HTTPServer{
		address:        cfg.EndpointAddrHTTP,
		logger:         l.With("module", "http_server"),
		users:          us,
		topics:         ts,
		replies:        rs,
		avatars:        av,
		tokenSecret:    []byte(cfg.SecretKey),
		allowedOrigins: cfg.AllowedOrigins,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.originGate())
	s.routes(r)
	s.r = r

	return s, nil
}

func (s *HTTPServer) routes(r *gin.Engine) {
	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)

	// Reads are public; every create/update/delete passes the auth gate.
	r.GET("/topics", s.handleListTopics)
	r.POST("/topics", s.requireAuth(), s.handleCreateTopic)
	r.GET("/topics/:id", s.handleGetTopic)
	r.PUT("/topics/:id", s.requireAuth(), s.handleUpdateTopic)
	r.DELETE("/topics/:id", s.requireAuth(), s.handleDeleteTopic)

	r.GET("/replies", s.handleListReplies)
	r.POST("/replies", s.requireAuth(), s.handleCreateReply)
	r.PUT("/replies/:id", s.requireAuth(), s.handleUpdateReply)
	r.DELETE("/replies/:id", s.requireAuth(), s.handleDeleteReply)

	r.GET("/search", s.handleSearch)

	r.POST("/me/avatar", s.requireAuth(), s.handleUploadAvatar)

	r.GET("/healthz", s.handleHealth)
}

// Handler returns the assembled request pipeline. Used by tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.r,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
