// Package query holds the list filters sent to the resource API and the
// selector that derives them from the acting identity's role.
package query

import (
	"maps"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
)

// Recognised filter keys.
const (
	KeyUsername = "username"
	KeyPassword = "password"
	KeyIsAdmin  = "isAdmin"
)

// Query is a set of key/value filters. The zero value is the unscoped query.
type Query map[string]string

// Encode renders q as a URL query string with keys sorted.
func (q Query) Encode() string {
	v := make(url.Values, len(q))
	for k, val := range q {
		v.Set(k, val)
	}
	return v.Encode()
}

// Key identifies the query for stale-response detection. Queries with the
// same filters have the same key regardless of construction order.
func (q Query) Key() string {
	return q.Encode()
}

func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	return maps.Clone(q)
}

// Scoped reports whether q narrows results to a single owner.
func (q Query) Scoped() bool {
	_, ok := q[KeyUsername]
	return ok
}

// TravelPlans selects the travel plan list query for the acting identity:
// admins see every plan, users only their own.
func TravelPlans(id models.Identity) Query {
	if id.IsAdmin() {
		return Query{}
	}
	return Query{KeyUsername: id.Username}
}

// Accounts selects the account list query. Only admins manage accounts and
// they never see other admins; ok is false for anyone else.
func Accounts(id models.Identity) (q Query, ok bool) {
	if !id.IsAdmin() {
		return nil, false
	}
	return Query{KeyIsAdmin: strconv.FormatBool(false)}, true
}

// Login is the account lookup issued by the login form. The password is
// compared by the server.
func Login(c models.Credentials) Query {
	return Query{KeyUsername: c.Username, KeyPassword: c.Password}
}
