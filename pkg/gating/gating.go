// Package gating centralizes the view-level action checks. Views call
// these predicates instead of comparing role strings, keeping the
// privilege hierarchy in one place. The backend stays the authoritative
// enforcement point; these checks only decide which controls to show.
package gating

import "github.com/VorteXchange1987/kinea-1/pkg/api"

// CanModerateComment allows moderators and above, or the comment's own
// author.
func CanModerateComment(caps api.Capabilities, actorID, ownerID string) bool {
	if caps.IsModerator {
		return true
	}
	return caps.IsAuthenticated && actorID != "" && actorID == ownerID
}

// CanDeleteComment follows the moderation rule: moderator-or-above, or
// owner.
func CanDeleteComment(caps api.Capabilities, actorID, ownerID string) bool {
	return CanModerateComment(caps, actorID, ownerID)
}

// CanEditComment is moderator-or-above; ownership does not extend to
// editing others' replies under a thread.
func CanEditComment(caps api.Capabilities) bool {
	return caps.IsModerator
}

// Destructive administrative actions require admin privilege regardless
// of ownership.

func CanPinComment(caps api.Capabilities) bool  { return caps.IsAdmin }
func CanBanUser(caps api.Capabilities) bool     { return caps.IsAdmin }
func CanChangeRole(caps api.Capabilities) bool  { return caps.IsAdmin }
func CanManageAds(caps api.Capabilities) bool   { return caps.IsAdmin }
func CanViewStats(caps api.Capabilities) bool   { return caps.IsAdmin }
func CanSearchUsers(caps api.Capabilities) bool { return caps.IsAdmin }

// Catalog management: creation and edits are moderator work, deletion
// is admin-only.

func CanCreateContent(caps api.Capabilities) bool { return caps.IsModerator }
func CanEditContent(caps api.Capabilities) bool   { return caps.IsModerator }
func CanDeleteContent(caps api.Capabilities) bool { return caps.IsAdmin }

// Participation: any authenticated user.

func CanComment(caps api.Capabilities) bool  { return caps.IsAuthenticated }
func CanLike(caps api.Capabilities) bool     { return caps.IsAuthenticated }
func CanFavorite(caps api.Capabilities) bool { return caps.IsAuthenticated }
