package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) ListSeries(c *gin.Context) {
	list, err := h.series.List(c.Request.Context())
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, publicSeries(list))
}

func (h HandlerSet) SearchSeries(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, []api.Series{})
		return
	}

	list, err := h.series.Search(c.Request.Context(), query)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, publicSeries(list))
}

func (h HandlerSet) GetSeries(c *gin.Context) {
	series, err := h.series.GetByID(c.Request.Context(), c.Param("seriesId"))
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, series.Public())
}

func (h HandlerSet) CreateSeries(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req api.SeriesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		fail(c, http.StatusBadRequest, "Başlık zorunludur")
		return
	}

	series := models.Series{
		ID:          ids.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		PosterURL:   req.PosterURL,
		Genre:       req.Genre,
		CreatedBy:   user.ID,
	}
	if err := h.series.Create(c.Request.Context(), series); err != nil {
		repoFail(c, err)
		return
	}

	created, err := h.series.GetByID(c.Request.Context(), series.ID)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, created.Public())
}

func (h HandlerSet) UpdateSeries(c *gin.Context) {
	var req api.SeriesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	id := c.Param("seriesId")
	update := models.Series{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		PosterURL:   req.PosterURL,
		Genre:       req.Genre,
	}
	if err := h.series.Update(c.Request.Context(), id, update); err != nil {
		repoFail(c, err)
		return
	}

	series, err := h.series.GetByID(c.Request.Context(), id)
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, series.Public())
}

func (h HandlerSet) DeleteSeries(c *gin.Context) {
	if err := h.series.Delete(c.Request.Context(), c.Param("seriesId")); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Dizi silindi"})
}

func publicSeries(list []models.Series) []api.Series {
	out := make([]api.Series, 0, len(list))
	for _, s := range list {
		out = append(out, s.Public())
	}
	return out
}
