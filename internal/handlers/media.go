package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

const maxUploadBytes = 20 << 20

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

func (h HandlerSet) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "Dosya bulunamadı")
		return
	}
	if header.Size > maxUploadBytes {
		fail(c, http.StatusRequestEntityTooLarge, "Dosya çok büyük (en fazla 20MB)")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[contentType]; !ok {
		fail(c, http.StatusBadRequest, "Desteklenmeyen dosya türü")
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectName := ids.New() + ext

	url, err := h.store.Put(c.Request.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		h.log.Error().Err(err).Str("object", objectName).Msg("media upload failed")
		fail(c, http.StatusInternalServerError, "Yükleme başarısız")
		return
	}

	c.JSON(http.StatusOK, api.UploadResponse{URL: url})
}
