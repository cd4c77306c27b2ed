package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) ListEpisodes(c *gin.Context) {
	episodes, err := h.episodes.ListBySeason(c.Request.Context(), c.Param("seasonId"))
	if err != nil {
		repoFail(c, err)
		return
	}

	out := make([]api.Episode, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, e.Public())
	}
	c.JSON(http.StatusOK, out)
}

// GetEpisode counts the view in redis and folds the not-yet-flushed
// delta into the returned total, so repeated reads see a monotonic
// counter before the cron flush lands.
func (h HandlerSet) GetEpisode(c *gin.Context) {
	ctx := c.Request.Context()
	episode, err := h.episodes.GetByID(ctx, c.Param("episodeId"))
	if err != nil {
		repoFail(c, err)
		return
	}

	h.views.Bump(ctx, episode.ID)
	episode.Views += h.views.Pending(ctx, episode.ID)

	c.JSON(http.StatusOK, episode.Public())
}

func (h HandlerSet) CreateEpisode(c *gin.Context) {
	var req api.EpisodeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if strings.TrimSpace(req.VideoEmbedURL) == "" {
		fail(c, http.StatusBadRequest, "Video adresi zorunludur")
		return
	}

	episode := models.Episode{
		ID:            ids.New(),
		SeasonID:      req.SeasonID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         strings.TrimSpace(req.Title),
		VideoEmbedURL: req.VideoEmbedURL,
		ThumbnailURL:  req.ThumbnailURL,
		Description:   req.Description,
	}
	if err := h.episodes.Create(c.Request.Context(), episode); err != nil {
		repoFail(c, err)
		return
	}

	created, err := h.episodes.GetByID(c.Request.Context(), episode.ID)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, created.Public())
}

func (h HandlerSet) UpdateEpisode(c *gin.Context) {
	var req api.EpisodeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	id := c.Param("episodeId")
	update := models.Episode{
		EpisodeNumber: req.EpisodeNumber,
		Title:         strings.TrimSpace(req.Title),
		VideoEmbedURL: req.VideoEmbedURL,
		ThumbnailURL:  req.ThumbnailURL,
		Description:   req.Description,
	}
	if err := h.episodes.Update(c.Request.Context(), id, update); err != nil {
		repoFail(c, err)
		return
	}

	episode, err := h.episodes.GetByID(c.Request.Context(), id)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, episode.Public())
}

func (h HandlerSet) DeleteEpisode(c *gin.Context) {
	if err := h.episodes.Delete(c.Request.Context(), c.Param("episodeId")); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Bölüm silindi"})
}
