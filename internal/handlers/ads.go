package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) GetAds(c *gin.Context) {
	content, err := h.ads.Get(c.Request.Context())
	if err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.AdContent{ID: h.ads.ID(), Content: content})
}

func (h HandlerSet) UpdateAds(c *gin.Context) {
	var req api.AdContentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	if err := h.ads.Set(c.Request.Context(), req.Content); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.AdContent{ID: h.ads.ID(), Content: req.Content})
}
