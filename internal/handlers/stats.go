package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

const topEpisodeLimit = 10

func (h HandlerSet) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		repoFail(c, err)
		return
	}
	series, err := h.series.Count(ctx)
	if err != nil {
		repoFail(c, err)
		return
	}
	episodes, err := h.episodes.Count(ctx)
	if err != nil {
		repoFail(c, err)
		return
	}
	comments, err := h.comments.Count(ctx)
	if err != nil {
		repoFail(c, err)
		return
	}

	top, err := h.episodes.TopByViews(ctx, topEpisodeLimit)
	if err != nil {
		repoFail(c, err)
		return
	}
	topOut := make([]api.Episode, 0, len(top))
	for _, e := range top {
		topOut = append(topOut, e.Public())
	}

	c.JSON(http.StatusOK, api.Stats{
		TotalUsers:    users,
		TotalSeries:   series,
		TotalEpisodes: episodes,
		TotalComments: comments,
		TopEpisodes:   topOut,
	})
}
