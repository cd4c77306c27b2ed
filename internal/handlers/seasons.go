package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) ListSeasons(c *gin.Context) {
	seriesID := c.Param("seriesId")
	if _, err := h.series.GetByID(c.Request.Context(), seriesID); err != nil {
		repoFail(c, err)
		return
	}

	seasons, err := h.series.ListSeasons(c.Request.Context(), seriesID)
	if err != nil {
		repoFail(c, err)
		return
	}

	out := make([]api.Season, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, s.Public())
	}
	c.JSON(http.StatusOK, out)
}

func (h HandlerSet) CreateSeason(c *gin.Context) {
	var req api.SeasonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	if _, err := h.series.GetByID(c.Request.Context(), req.SeriesID); err != nil {
		repoFail(c, err)
		return
	}

	season := models.Season{
		ID:           ids.New(),
		SeriesID:     req.SeriesID,
		SeasonNumber: req.SeasonNumber,
		Title:        strings.TrimSpace(req.Title),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.series.CreateSeason(c.Request.Context(), season); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, season.Public())
}

func (h HandlerSet) UpdateSeason(c *gin.Context) {
	var req api.SeasonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	update := models.Season{
		SeasonNumber: req.SeasonNumber,
		Title:        strings.TrimSpace(req.Title),
	}
	if err := h.series.UpdateSeason(c.Request.Context(), c.Param("seasonId"), update); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Sezon güncellendi"})
}
