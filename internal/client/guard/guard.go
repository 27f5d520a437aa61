// Package guard decides whether a navigation may proceed given the current
// identity. Decisions are pure: they depend only on the route class and the
// identity passed in.
package guard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
)

// Class is the access class of a route.
type Class int

const (
	// PublicOnly routes are for anonymous visitors (login, registration).
	PublicOnly Class = iota
	// Protected routes need any authenticated identity.
	Protected
	// AdminOnly routes need an administrator.
	AdminOnly
)

func (c Class) String() string {
	switch c {
	case PublicOnly:
		return "public-only"
	case Protected:
		return "protected"
	case AdminOnly:
		return "admin-only"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Route paths.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathDashboard  = "/dashboard"
	PathPlans      = "/travel-plans"
	PathPlanCreate = "/travel-plans/create"
	PathPlanEdit   = "/travel-plans/edit/:id"
	PathUsers      = "/users"
)

var ErrUnknownRoute = errors.New("unknown route")

// Decision is the outcome of a guard check. When Admit is false, Target is
// where the navigation is sent instead.
type Decision struct {
	Admit  bool
	Target string
}

// Decide applies the access rules of class to ident (nil when nobody is
// logged in).
func Decide(class Class, ident *models.Identity) Decision {
	switch class {
	case PublicOnly:
		if ident != nil {
			return Decision{Target: PathDashboard}
		}
	case Protected:
		if ident == nil {
			return Decision{Target: PathLogin}
		}
	case AdminOnly:
		if ident == nil {
			return Decision{Target: PathLogin}
		}
		if !ident.IsAdmin() {
			return Decision{Target: PathDashboard}
		}
	}
	return Decision{Admit: true}
}

// Route is an entry of the route table.
type Route struct {
	Pattern string
	Class   Class
}

// Routes is the application route table.
var Routes = []Route{
	{PathHome, PublicOnly},
	{PathLogin, PublicOnly},
	{PathRegister, PublicOnly},
	{PathDashboard, Protected},
	{PathPlans, Protected},
	{PathPlanCreate, Protected},
	{PathPlanEdit, Protected},
	{PathUsers, AdminOnly},
}

// Match finds the route for path. Pattern segments starting with ':' match
// any single non-empty segment and are returned in params.
func Match(path string) (Route, map[string]string, bool) {
	segs := split(path)
	for _, r := range Routes {
		if params, ok := matchSegments(split(r.Pattern), segs); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Classify returns the access class of path.
func Classify(path string) (Class, bool) {
	r, _, ok := Match(path)
	return r.Class, ok
}

// Resolve classifies path and decides it for ident. The returned string is
// the path the navigation ends at: path itself when admitted, the redirect
// target otherwise.
func Resolve(path string, ident *models.Identity) (string, Decision, error) {
	class, ok := Classify(path)
	if !ok {
		return "", Decision{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	d := Decide(class, ident)
	if d.Admit {
		return path, d, nil
	}
	return d.Target, d, nil
}

// Expand fills the ':param' segments of pattern.
func Expand(pattern string, params map[string]string) string {
	segs := split(pattern)
	for i, s := range segs {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segs[i] = params[name]
		}
	}
	return "/" + strings.Join(segs, "/")
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segs[i] == "" {
				return nil, false
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
