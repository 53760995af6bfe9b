package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadboard/internal/common"
)

type registerRequest struct {
	// The frontend sends the display name as "name".
	Username string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "all fields are required")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Which field collided is reported on purpose; login failures stay
		// uniform, registration conflicts do not.
		switch {
		case errors.Is(err, common.ErrorUsernameTaken):
			writeError(c, http.StatusConflict, "username already exists")
		case errors.Is(err, common.ErrorEmailTaken):
			writeError(c, http.StatusConflict, "email already exists")
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
			writeError(c, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	s.logger.Info(c.Request.Context(), "registered", "user_id", user.ID)
	c.JSON(http.StatusOK, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "email and password required")
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// Unknown email and wrong password are indistinguishable here.
			writeError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}
