package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/auth"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/response"
)

type AuthHandler struct {
	authenticator *auth.StaffAuthenticator
	jwtManager    *auth.JWTManager
	logger        *zap.Logger
}

func NewAuthHandler(
	authenticator *auth.StaffAuthenticator,
	jwtManager *auth.JWTManager,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	token, err := h.authenticator.Login(req.Email, req.Password)
	if err != nil {
		h.logger.Info("staff login rejected", zap.String("email", req.Email))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtManager.TTL().Seconds()),
	})
}
