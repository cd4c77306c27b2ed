package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (h HandlerSet) ListComments(c *gin.Context) {
	ctx := c.Request.Context()
	episodeID := c.Param("episodeId")

	top, err := h.comments.ListTopLevel(ctx, episodeID)
	if err != nil {
		repoFail(c, err)
		return
	}

	out := make([]api.Comment, 0, len(top))
	for _, comment := range top {
		entry := comment.Public()
		replies, err := h.comments.ListReplies(ctx, comment.ID)
		if err != nil {
			repoFail(c, err)
			return
		}
		entry.Replies = make([]api.Comment, 0, len(replies))
		for _, reply := range replies {
			entry.Replies = append(entry.Replies, reply.Public())
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

func (h HandlerSet) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()
	user, _ := middleware.CurrentUser(c)

	if !h.limiter.Allow(ctx, user.ID) {
		fail(c, http.StatusTooManyRequests, "Çok fazla yorum gönderiyorsunuz. Lütfen bekleyin.")
		return
	}

	var req api.CommentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(c, http.StatusBadRequest, "Yorum boş olamaz")
		return
	}

	if _, err := h.episodes.GetByID(ctx, req.EpisodeID); err != nil {
		repoFail(c, err)
		return
	}
	if req.ParentCommentID != nil {
		if _, err := h.comments.GetByID(ctx, *req.ParentCommentID); err != nil {
			repoFail(c, err)
			return
		}
	}

	comment := models.Comment{
		ID:               ids.New(),
		EpisodeID:        req.EpisodeID,
		UserID:           user.ID,
		Username:         user.Username,
		UserProfilePhoto: user.ProfilePhotoURL,
		UserRole:         user.Role,
		Content:          strings.TrimSpace(req.Content),
		ParentCommentID:  req.ParentCommentID,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.comments.Create(ctx, comment); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment.Public())
}

func (h HandlerSet) LikeComment(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	comment, err := h.comments.GetByID(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		repoFail(c, err)
		return
	}

	liked, err := h.comments.ToggleLike(c.Request.Context(), comment.ID, user.ID)
	if err != nil {
		repoFail(c, err)
		return
	}

	if liked {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Yorum beğenildi", Action: "liked"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Beğeni kaldırıldı", Action: "unliked"})
}

func (h HandlerSet) PinComment(c *gin.Context) {
	ctx := c.Request.Context()

	comment, err := h.comments.GetByID(ctx, c.Param("commentId"))
	if err != nil {
		repoFail(c, err)
		return
	}

	pinned := !comment.IsPinned
	if err := h.comments.SetPinned(ctx, comment.ID, pinned); err != nil {
		repoFail(c, err)
		return
	}

	if pinned {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Yorum sabitlendi", Action: "pinned"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Sabitleme kaldırıldı", Action: "unpinned"})
}

func (h HandlerSet) UpdateComment(c *gin.Context) {
	var req api.CommentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(c, http.StatusBadRequest, "Yorum boş olamaz")
		return
	}

	if err := h.comments.UpdateContent(c.Request.Context(), c.Param("commentId"), strings.TrimSpace(req.Content)); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Yorum güncellendi"})
}

// DeleteComment is open to moderators and to the comment's author.
func (h HandlerSet) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()
	user, _ := middleware.CurrentUser(c)

	comment, err := h.comments.GetByID(ctx, c.Param("commentId"))
	if err != nil {
		repoFail(c, err)
		return
	}
	if !user.Role.AtLeast(api.RoleModerator) && comment.UserID != user.ID {
		fail(c, http.StatusForbidden, "Yetkisiz erişim")
		return
	}

	if err := h.comments.Delete(ctx, comment.ID); err != nil {
		repoFail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Yorum silindi"})
}
