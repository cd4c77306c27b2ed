package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.db.Ping(ctx); err != nil {
		fail(c, http.StatusServiceUnavailable, "Veritabanı erişilemez")
		return
	}
	if err := h.cache.Ping(ctx).Err(); err != nil {
		fail(c, http.StatusServiceUnavailable, "Önbellek erişilemez")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
