package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	ucAuth "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/auth"
)

type AuthHandler struct {
	login   *ucAuth.Login
	session *ucAuth.Session
	config  *config.Config
}

func NewAuthHandler(login *ucAuth.Login, session *ucAuth.Session, cfg *config.Config) *AuthHandler {
	return &AuthHandler{login: login, session: session, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	user, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context(), actorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.SessionUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(h.config.JWTTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
