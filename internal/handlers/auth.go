package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/internal/service"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		authFail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{Token: result.Token, User: result.User.Public()})
}

func (h HandlerSet) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		authFail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{Token: result.Token, User: result.User.Public()})
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Geçersiz token")
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
