// Package routeguard decides which view a navigation request resolves
// to, given the session's loading state and capability flags. An
// insufficient role is not an error: it resolves to a redirect.
package routeguard

import (
	"strings"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// Requirement is the capability a route demands.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireAuthenticated
	RequireModerator
	RequireAdmin
)

// Route is one guarded path pattern. Pattern segments starting with ':'
// capture path parameters ("/series/:seriesId").
type Route struct {
	Name     string
	Pattern  string
	Requires Requirement
}

// OutcomeKind is the decision for one navigation request.
type OutcomeKind int

const (
	// OutcomeLoading defers the decision until the session resolves,
	// so a gated view never flashes before bootstrap finishes.
	OutcomeLoading OutcomeKind = iota
	OutcomeRender
	OutcomeRedirect
	OutcomeNotFound
)

type Outcome struct {
	Kind       OutcomeKind
	Route      *Route
	Params     map[string]string
	RedirectTo string
}

// Guard evaluates navigation requests against a fixed route table.
type Guard struct {
	routes     []Route
	redirectTo string
}

// New builds a guard over the given routes. Denied navigations redirect
// to the landing path "/".
func New(routes []Route) *Guard {
	return &Guard{routes: routes, redirectTo: "/"}
}

// DefaultRoutes is the kinea route table: the public catalog, the
// authenticated profile, and the role-gated panels.
func DefaultRoutes() []Route {
	return []Route{
		{Name: "landing", Pattern: "/", Requires: RequireNone},
		{Name: "about", Pattern: "/about", Requires: RequireNone},
		{Name: "contact", Pattern: "/contact", Requires: RequireNone},
		{Name: "home", Pattern: "/home", Requires: RequireNone},
		{Name: "series-detail", Pattern: "/series/:seriesId", Requires: RequireNone},
		{Name: "watch", Pattern: "/watch/:episodeId", Requires: RequireNone},
		{Name: "public-profile", Pattern: "/user/:userId", Requires: RequireNone},
		{Name: "profile", Pattern: "/profile", Requires: RequireAuthenticated},
		{Name: "moderator-panel", Pattern: "/moderator", Requires: RequireModerator},
		{Name: "admin-panel", Pattern: "/admin", Requires: RequireAdmin},
	}
}

// Evaluate maps a requested path to an outcome. It is pure: callers
// re-evaluate on every render, so a capability downgrade revokes access
// to an already-displayed view on the next cycle.
func (g *Guard) Evaluate(path string, loading bool, caps api.Capabilities) Outcome {
	if loading {
		return Outcome{Kind: OutcomeLoading}
	}

	for i := range g.routes {
		route := &g.routes[i]
		params, ok := match(route.Pattern, path)
		if !ok {
			continue
		}
		if !permitted(route.Requires, caps) {
			return Outcome{Kind: OutcomeRedirect, RedirectTo: g.redirectTo}
		}
		return Outcome{Kind: OutcomeRender, Route: route, Params: params}
	}
	return Outcome{Kind: OutcomeNotFound}
}

func permitted(req Requirement, caps api.Capabilities) bool {
	switch req {
	case RequireAuthenticated:
		return caps.IsAuthenticated
	case RequireModerator:
		return caps.IsModerator
	case RequireAdmin:
		return caps.IsAdmin
	default:
		return true
	}
}

// match compares a pattern against a concrete path segment by segment,
// collecting ':' parameters. Trailing slashes are ignored.
func match(pattern, path string) (map[string]string, bool) {
	patternParts := splitPath(pattern)
	pathParts := splitPath(path)
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	var params map[string]string
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			if pathParts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[part[1:]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
