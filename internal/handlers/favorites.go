package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) ListFavorites(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	list, err := h.favorites.ListSeries(c.Request.Context(), user.ID)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, publicSeries(list))
}

func (h HandlerSet) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()
	user, _ := middleware.CurrentUser(c)

	seriesID := c.Param("seriesId")
	if _, err := h.series.GetByID(ctx, seriesID); err != nil {
		repoFail(c, err)
		return
	}

	added, err := h.favorites.Toggle(ctx, user.ID, seriesID)
	if err != nil {
		repoFail(c, err)
		return
	}

	if added {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Favorilere eklendi", Action: "added"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Favorilerden çıkarıldı", Action: "removed"})
}
