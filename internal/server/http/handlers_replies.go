package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"threadboard/internal/common"
	"threadboard/internal/server/models"
)

func (s *HTTPServer) handleListReplies(c *gin.Context) {
	topicID, err := strconv.ParseInt(c.Query("topic_id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid topic_id")
		return
	}

	replies, err := s.replies.ListByTopic(c.Request.Context(), topicID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing replies failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if replies == nil {
		replies = []*models.Reply{}
	}
	c.JSON(http.StatusOK, replies)
}

type createReplyRequest struct {
	TopicID int64  `json:"topic_id"`
	Content string `json:"content"`
}

func (s *HTTPServer) handleCreateReply(c *gin.Context) {
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.TopicID == 0 || strings.TrimSpace(req.Content) == "" {
		writeError(c, http.StatusBadRequest, "topic_id and content required")
		return
	}

	reply, err := s.replies.Create(c.Request.Context(), subjectID(c), req.TopicID, req.Content)
	if err != nil {
		s.logger.Error(c.Request.Context(), "creating reply failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, reply)
}

type updateReplyRequest struct {
	Content string `json:"content"`
}

func (s *HTTPServer) handleUpdateReply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(c, http.StatusBadRequest, "content required")
		return
	}

	reply, err := s.replies.Update(c.Request.Context(), id, subjectID(c), req.Content)
	if err != nil {
		s.writeReplyMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (s *HTTPServer) handleDeleteReply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.replies.Delete(c.Request.Context(), id, subjectID(c)); err != nil {
		s.writeReplyMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) writeReplyMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(c, http.StatusNotFound, "reply not found")
	case errors.Is(err, common.ErrorForbidden):
		writeError(c, http.StatusForbidden, "forbidden")
	default:
		s.logger.Error(c.Request.Context(), "reply mutation failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
