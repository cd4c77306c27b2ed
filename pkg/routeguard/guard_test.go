package routeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

var (
	anonymous = api.Capabilities{}
	plainUser = api.Capabilities{IsAuthenticated: true}
	moderator = api.Capabilities{IsAuthenticated: true, IsModerator: true}
	admin     = api.Capabilities{IsAuthenticated: true, IsModerator: true, IsAdmin: true}
)

func defaultGuard() *Guard {
	return New(DefaultRoutes())
}

func TestLoadingDefersEverything(t *testing.T) {
	g := defaultGuard()

	for _, path := range []string{"/", "/admin", "/profile", "/nope"} {
		outcome := g.Evaluate(path, true, admin)
		assert.Equal(t, OutcomeLoading, outcome.Kind, "path %s", path)
	}
}

func TestPublicRoutesRenderForAnonymous(t *testing.T) {
	g := defaultGuard()

	for _, path := range []string{"/", "/about", "/contact", "/home"} {
		outcome := g.Evaluate(path, false, anonymous)
		assert.Equal(t, OutcomeRender, outcome.Kind, "path %s", path)
	}
}

func TestParamCapture(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/series/abc123", false, anonymous)
	require.Equal(t, OutcomeRender, outcome.Kind)
	assert.Equal(t, "series-detail", outcome.Route.Name)
	assert.Equal(t, "abc123", outcome.Params["seriesId"])

	outcome = g.Evaluate("/watch/ep9/", false, anonymous)
	require.Equal(t, OutcomeRender, outcome.Kind, "trailing slash should still match")
	assert.Equal(t, "ep9", outcome.Params["episodeId"])
}

func TestProfileRequiresAuthentication(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/profile", false, anonymous)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, "/", outcome.RedirectTo)

	outcome = g.Evaluate("/profile", false, plainUser)
	assert.Equal(t, OutcomeRender, outcome.Kind)
}

// An admin reaches the moderator panel: the moderator requirement is a
// floor, not an exact match.
func TestAdminReachesModeratorPanel(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/moderator", false, admin)
	require.Equal(t, OutcomeRender, outcome.Kind)
	assert.Equal(t, "moderator-panel", outcome.Route.Name)
}

func TestAnonymousRedirectedFromAdminPanel(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/admin", false, anonymous)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, "/", outcome.RedirectTo)
}

// A moderator is redirected from the admin panel, not shown an error.
func TestModeratorRedirectedFromAdminPanel(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/admin", false, moderator)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, "/", outcome.RedirectTo)

	outcome = g.Evaluate("/admin", false, admin)
	assert.Equal(t, OutcomeRender, outcome.Kind)
}

// Evaluate is pure: the same path flips from render to redirect as soon
// as the capabilities shrink, which is what revokes an already-open
// panel on the next render cycle.
func TestDowngradeRevokesAccess(t *testing.T) {
	g := defaultGuard()

	before := g.Evaluate("/moderator", false, moderator)
	require.Equal(t, OutcomeRender, before.Kind)

	after := g.Evaluate("/moderator", false, plainUser)
	assert.Equal(t, OutcomeRedirect, after.Kind)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	g := defaultGuard()

	outcome := g.Evaluate("/no/such/page", false, admin)
	assert.Equal(t, OutcomeNotFound, outcome.Kind)
}
