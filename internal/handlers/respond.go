package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/repository"
	"github.com/VorteXchange1987/kinea-1/internal/service"
)

func fail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// repoFail maps repository sentinels onto HTTP statuses; anything else
// is a server error.
func repoFail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		fail(c, http.StatusNotFound, "Kullanıcı bulunamadı")
	case errors.Is(err, repository.ErrSeriesNotFound):
		fail(c, http.StatusNotFound, "Dizi bulunamadı")
	case errors.Is(err, repository.ErrSeasonNotFound):
		fail(c, http.StatusNotFound, "Sezon bulunamadı")
	case errors.Is(err, repository.ErrEpisodeNotFound):
		fail(c, http.StatusNotFound, "Bölüm bulunamadı")
	case errors.Is(err, repository.ErrCommentNotFound):
		fail(c, http.StatusNotFound, "Yorum bulunamadı")
	default:
		fail(c, http.StatusInternalServerError, "Sunucu hatası")
	}
}

func authFail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrBanned):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrTaken),
		errors.Is(err, service.ErrOnlyGmail),
		errors.Is(err, service.ErrUsernameLength),
		errors.Is(err, service.ErrPasswordLength):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "Sunucu hatası")
	}
}
