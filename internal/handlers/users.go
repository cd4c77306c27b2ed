package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/internal/security"
	"github.com/VorteXchange1987/kinea-1/internal/service"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
	"github.com/VorteXchange1987/kinea-1/pkg/session"
)

func (h HandlerSet) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	users, err := h.users.Search(c.Request.Context(), query)
	if err != nil {
		repoFail(c, err)
		return
	}

	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}

func (h HandlerSet) BanUser(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	target, err := h.users.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		repoFail(c, err)
		return
	}
	if target.IsSuperAdmin {
		fail(c, http.StatusForbidden, "Süper admin engellenemez")
		return
	}

	if err := h.users.SetBanned(c.Request.Context(), target.ID, true); err != nil {
		repoFail(c, err)
		return
	}

	h.telegram.UserBanned(target.Username, actor.Username)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Kullanıcı engellendi"})
}

func (h HandlerSet) UnbanUser(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	target, err := h.users.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		repoFail(c, err)
		return
	}

	if err := h.users.SetBanned(c.Request.Context(), target.ID, false); err != nil {
		repoFail(c, err)
		return
	}

	h.telegram.UserUnbanned(target.Username, actor.Username)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Kullanıcı engeli kaldırıldı"})
}

func (h HandlerSet) UpdateRole(c *gin.Context) {
	var req api.RoleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	assignable := false
	for _, r := range api.AssignableRoles() {
		if req.Role == r {
			assignable = true
			break
		}
	}
	if !assignable {
		fail(c, http.StatusBadRequest, "Geçersiz rol")
		return
	}

	target, err := h.users.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		repoFail(c, err)
		return
	}
	if target.IsSuperAdmin {
		fail(c, http.StatusForbidden, "Süper admin rolü değiştirilemez")
		return
	}

	if err := h.users.SetRole(c.Request.Context(), target.ID, req.Role); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Rol güncellendi"})
}

func (h HandlerSet) UpdateProfilePhoto(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req api.ProfilePhotoUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	if err := h.users.UpdateProfilePhoto(c.Request.Context(), user.ID, req.ProfilePhotoURL); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Profil fotoğrafı güncellendi"})
}

func (h HandlerSet) UpdateUsername(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req api.UsernameUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	username := strings.TrimSpace(req.Username)
	if !usernameLengthOK(username) {
		fail(c, http.StatusBadRequest, service.ErrUsernameLength.Error())
		return
	}

	if existing, err := h.users.FindByUsername(c.Request.Context(), username); err == nil && existing.ID != user.ID {
		fail(c, http.StatusBadRequest, service.ErrTaken.Error())
		return
	}

	if err := h.users.UpdateUsername(c.Request.Context(), user.ID, username); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Kullanıcı adı güncellendi"})
}

func (h HandlerSet) UpdateEmail(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req api.EmailUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.HasSuffix(email, "@gmail.com") {
		fail(c, http.StatusBadRequest, session.ErrNotGmail.Error())
		return
	}

	if existing, err := h.users.FindByEmail(c.Request.Context(), email); err == nil && existing.ID != user.ID {
		fail(c, http.StatusBadRequest, service.ErrTaken.Error())
		return
	}

	if err := h.users.UpdateEmail(c.Request.Context(), user.ID, email); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Email güncellendi"})
}

func (h HandlerSet) UpdatePassword(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req api.PasswordUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	matches, err := security.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil || !matches {
		fail(c, http.StatusBadRequest, "Mevcut şifre hatalı")
		return
	}
	if !passwordLengthOK(req.NewPassword) {
		fail(c, http.StatusBadRequest, service.ErrPasswordLength.Error())
		return
	}

	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	if err := h.users.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Şifre güncellendi"})
}

// Length limits count runes, not bytes, so Turkish characters in a
// username or password are not penalized by their UTF-8 width.

func usernameLengthOK(username string) bool {
	n := utf8.RuneCountInString(username)
	return n >= 3 && n <= 30
}

func passwordLengthOK(password string) bool {
	return utf8.RuneCountInString(password) >= 6
}
