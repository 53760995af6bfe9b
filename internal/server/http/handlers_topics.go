package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"threadboard/internal/common"
	"threadboard/internal/server/models"
)

func (s *HTTPServer) handleListTopics(c *gin.Context) {
	topics, err := s.topics.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing topics failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if topics == nil {
		topics = []*models.Topic{}
	}
	c.JSON(http.StatusOK, topics)
}

func (s *HTTPServer) handleGetTopic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	topic, err := s.topics.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(c, http.StatusNotFound, "topic not found")
			return
		}
		s.logger.Error(c.Request.Context(), "loading topic failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, topic)
}

type topicRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *HTTPServer) handleCreateTopic(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(c, http.StatusBadRequest, "title and content required")
		return
	}

	topic, err := s.topics.Create(c.Request.Context(), subjectID(c), req.Title, req.Content)
	if err != nil {
		s.logger.Error(c.Request.Context(), "creating topic failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (s *HTTPServer) handleUpdateTopic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}

	topic, err := s.topics.Update(c.Request.Context(), id, subjectID(c), req.Title, req.Content)
	if err != nil {
		s.writeTopicMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (s *HTTPServer) handleDeleteTopic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.topics.Delete(c.Request.Context(), id, subjectID(c)); err != nil {
		s.writeTopicMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeTopicMutationError keeps the ordering visible to callers: a missing
// topic is "not found" before ownership is ever evaluated, and a non-owner
// gets "forbidden", distinct from the auth gate's "unauthorized".
func (s *HTTPServer) writeTopicMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(c, http.StatusNotFound, "topic not found")
	case errors.Is(err, common.ErrorForbidden):
		writeError(c, http.StatusForbidden, "forbidden")
	default:
		s.logger.Error(c.Request.Context(), "topic mutation failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

func (s *HTTPServer) handleSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, []*models.Topic{})
		return
	}

	results, err := s.topics.Search(c.Request.Context(), q)
	if err != nil {
		s.logger.Error(c.Request.Context(), "search failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "search failed")
		return
	}
	if results == nil {
		results = []*models.Topic{}
	}
	c.JSON(http.StatusOK, results)
}
