package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxAvatarBytes caps avatar uploads at 5 MiB.
const maxAvatarBytes = 5 << 20

func (s *HTTPServer) handleUploadAvatar(c *gin.Context) {
	uid := subjectID(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)

	file, err := c.FormFile("avatar")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing file field: avatar")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid upload")
		return
	}

	url, err := s.avatars.Store(c.Request.Context(), uid, file.Filename, contentType, data)
	if err != nil {
		s.logger.Error(c.Request.Context(), "avatar upload failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "failed to save avatar")
		return
	}

	if err := s.users.SetAvatarURL(c.Request.Context(), uid, url); err != nil {
		s.logger.Error(c.Request.Context(), "avatar update failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "failed to update avatar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
