package gating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

var (
	anonymous = api.Capabilities{}
	plainUser = api.Capabilities{IsAuthenticated: true}
	moderator = api.Capabilities{IsAuthenticated: true, IsModerator: true}
	admin     = api.Capabilities{IsAuthenticated: true, IsModerator: true, IsAdmin: true}
)

func TestCanModerateComment(t *testing.T) {
	const owner = "owner-1"
	const other = "other-2"

	assert.True(t, CanModerateComment(moderator, other, owner), "moderator moderates any comment")
	assert.True(t, CanModerateComment(plainUser, owner, owner), "author moderates own comment")
	assert.False(t, CanModerateComment(plainUser, other, owner), "plain user cannot touch others")
	assert.False(t, CanModerateComment(anonymous, owner, owner), "ownership requires authentication")
}

func TestDeleteFollowsModeration(t *testing.T) {
	assert.True(t, CanDeleteComment(admin, "x", "y"))
	assert.True(t, CanDeleteComment(plainUser, "same", "same"))
	assert.False(t, CanDeleteComment(plainUser, "x", "y"))
}

func TestEditIsModeratorOnly(t *testing.T) {
	assert.False(t, CanEditComment(plainUser), "authors do not get edit")
	assert.True(t, CanEditComment(moderator))
	assert.True(t, CanEditComment(admin))
}

func TestAdminOnlyActions(t *testing.T) {
	checks := map[string]func(api.Capabilities) bool{
		"pin":         CanPinComment,
		"ban":         CanBanUser,
		"role":        CanChangeRole,
		"ads":         CanManageAds,
		"stats":       CanViewStats,
		"user search": CanSearchUsers,
		"delete":      CanDeleteContent,
	}

	for name, check := range checks {
		assert.False(t, check(anonymous), "%s open to anonymous", name)
		assert.False(t, check(plainUser), "%s open to plain user", name)
		assert.False(t, check(moderator), "%s open to moderator", name)
		assert.True(t, check(admin), "%s closed to admin", name)
	}
}

func TestModeratorContentActions(t *testing.T) {
	assert.False(t, CanCreateContent(plainUser))
	assert.True(t, CanCreateContent(moderator))
	assert.True(t, CanEditContent(admin))
	assert.False(t, CanDeleteContent(moderator), "content delete stays admin only")
}

func TestAuthenticatedActions(t *testing.T) {
	for name, check := range map[string]func(api.Capabilities) bool{
		"comment":  CanComment,
		"like":     CanLike,
		"favorite": CanFavorite,
	} {
		assert.False(t, check(anonymous), "%s open to anonymous", name)
		assert.True(t, check(plainUser), "%s closed to plain user", name)
	}
}
